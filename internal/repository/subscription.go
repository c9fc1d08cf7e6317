package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
)

// SubscriptionRepository defines data access for subscriptions.
type SubscriptionRepository interface {
	// Create inserts a subscription. Returns ErrDuplicate if it already exists.
	Create(ctx context.Context, s *model.Subscription) (*model.Subscription, error)
	// Delete removes the subscription and reports whether one existed.
	Delete(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error)

	Subscribers(ctx context.Context, channel primitive.ObjectID, pq PageQuery) (*PageResult[model.Subscriber], error)
	SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, pq PageQuery) (*PageResult[model.SubscribedChannel], error)
}
