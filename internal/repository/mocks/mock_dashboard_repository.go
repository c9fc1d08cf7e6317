package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) ChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChannelStats), args.Error(1)
}

func (m *MockDashboardRepository) ChannelVideos(ctx context.Context, owner primitive.ObjectID, sort repository.Sort, pq repository.PageQuery) (*repository.PageResult[model.ChannelVideo], error) {
	args := m.Called(ctx, owner, sort, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ChannelVideo]), args.Error(1)
}
