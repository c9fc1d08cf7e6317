package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/service"
)

type MockTweetService struct {
	mock.Mock
}

func (m *MockTweetService) Create(ctx context.Context, owner primitive.ObjectID, content string) (*model.TweetWithOwner, error) {
	args := m.Called(ctx, owner, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TweetWithOwner), args.Error(1)
}

func (m *MockTweetService) ListByUser(ctx context.Context, userID string, page service.PageRequest) (*service.Page[model.TweetWithOwner], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.TweetWithOwner]), args.Error(1)
}

func (m *MockTweetService) Update(ctx context.Context, tweetID string, actor primitive.ObjectID, content string) (*model.TweetWithOwner, error) {
	args := m.Called(ctx, tweetID, actor, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TweetWithOwner), args.Error(1)
}

func (m *MockTweetService) Delete(ctx context.Context, tweetID string, actor primitive.ObjectID) error {
	args := m.Called(ctx, tweetID, actor)
	return args.Error(0)
}

var _ service.TweetService = (*MockTweetService)(nil)
