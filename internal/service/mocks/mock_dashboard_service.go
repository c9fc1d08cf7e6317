package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/service"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChannelStats), args.Error(1)
}

func (m *MockDashboardService) Videos(ctx context.Context, owner primitive.ObjectID, sortBy, sortType string, page service.PageRequest) (*service.Page[model.ChannelVideo], error) {
	args := m.Called(ctx, owner, sortBy, sortType, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.ChannelVideo]), args.Error(1)
}

var _ service.DashboardService = (*MockDashboardService)(nil)
