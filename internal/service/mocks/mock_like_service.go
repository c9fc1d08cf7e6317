package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/service"
)

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) Toggle(ctx context.Context, target model.LikeTarget, targetID string, user primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, target, targetID, user)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeService) LikedVideos(ctx context.Context, user primitive.ObjectID, page service.PageRequest) (*service.Page[model.LikedVideo], error) {
	args := m.Called(ctx, user, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.LikedVideo]), args.Error(1)
}

var _ service.LikeService = (*MockLikeService)(nil)
