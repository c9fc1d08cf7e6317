package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/service"
)

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Toggle(ctx context.Context, channelID string, subscriber primitive.ObjectID) (*model.Subscription, bool, error) {
	args := m.Called(ctx, channelID, subscriber)
	sub, _ := args.Get(0).(*model.Subscription)
	return sub, args.Bool(1), args.Error(2)
}

func (m *MockSubscriptionService) Subscribers(ctx context.Context, channelID string, page service.PageRequest) (*service.Page[model.Subscriber], error) {
	args := m.Called(ctx, channelID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.Subscriber]), args.Error(1)
}

func (m *MockSubscriptionService) SubscribedChannels(ctx context.Context, subscriberID string, page service.PageRequest) (*service.Page[model.SubscribedChannel], error) {
	args := m.Called(ctx, subscriberID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.SubscribedChannel]), args.Error(1)
}

var _ service.SubscriptionService = (*MockSubscriptionService)(nil)
