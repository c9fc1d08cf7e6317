package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, s *model.Subscription) (*model.Subscription, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, subscriber, channel)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Subscribers(ctx context.Context, channel primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.Subscriber], error) {
	args := m.Called(ctx, channel, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Subscriber]), args.Error(1)
}

func (m *MockSubscriptionRepository) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.SubscribedChannel], error) {
	args := m.Called(ctx, subscriber, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.SubscribedChannel]), args.Error(1)
}
