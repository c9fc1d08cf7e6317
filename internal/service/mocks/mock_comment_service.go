package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/service"
)

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) List(ctx context.Context, videoID string, page service.PageRequest) (*service.Page[model.CommentWithOwner], error) {
	args := m.Called(ctx, videoID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.CommentWithOwner]), args.Error(1)
}

func (m *MockCommentService) Add(ctx context.Context, videoID string, owner primitive.ObjectID, content string) (*model.CommentWithOwner, error) {
	args := m.Called(ctx, videoID, owner, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommentWithOwner), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, commentID string, actor primitive.ObjectID, content string) (*model.CommentWithOwner, error) {
	args := m.Called(ctx, commentID, actor, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommentWithOwner), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID string, actor primitive.ObjectID) error {
	args := m.Called(ctx, commentID, actor)
	return args.Error(0)
}

var _ service.CommentService = (*MockCommentService)(nil)
