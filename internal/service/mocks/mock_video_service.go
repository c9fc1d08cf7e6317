package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/service"
)

type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) List(ctx context.Context, in service.VideoListInput) (*service.Page[model.VideoWithOwner], error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.VideoWithOwner]), args.Error(1)
}

func (m *MockVideoService) Publish(ctx context.Context, owner primitive.ObjectID, in service.PublishVideoInput) (*model.Video, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoService) Get(ctx context.Context, videoID string, viewer primitive.ObjectID) (*model.VideoDetail, error) {
	args := m.Called(ctx, videoID, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoDetail), args.Error(1)
}

func (m *MockVideoService) Update(ctx context.Context, videoID string, actor primitive.ObjectID, in service.UpdateVideoInput) (*model.Video, error) {
	args := m.Called(ctx, videoID, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoService) Delete(ctx context.Context, videoID string, actor primitive.ObjectID) error {
	args := m.Called(ctx, videoID, actor)
	return args.Error(0)
}

func (m *MockVideoService) TogglePublish(ctx context.Context, videoID string, actor primitive.ObjectID) (*model.Video, error) {
	args := m.Called(ctx, videoID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

var _ service.VideoService = (*MockVideoService)(nil)
