package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, l *model.Like) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, target model.LikeTarget, targetID, userID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, target, targetID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) DeleteByTargets(ctx context.Context, target model.LikeTarget, ids []primitive.ObjectID) error {
	args := m.Called(ctx, target, ids)
	return args.Error(0)
}

func (m *MockLikeRepository) LikedVideos(ctx context.Context, userID primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.LikedVideo], error) {
	args := m.Called(ctx, userID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.LikedVideo]), args.Error(1)
}
