package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// SubscriptionService manages channel subscriptions.
type SubscriptionService interface {
	// Toggle subscribes or unsubscribes. The returned subscription is nil
	// after an unsubscribe.
	Toggle(ctx context.Context, channelID string, subscriber primitive.ObjectID) (*model.Subscription, bool, error)
	Subscribers(ctx context.Context, channelID string, page PageRequest) (*Page[model.Subscriber], error)
	SubscribedChannels(ctx context.Context, subscriberID string, page PageRequest) (*Page[model.SubscribedChannel], error)
}

type subscriptionService struct {
	subs  repository.SubscriptionRepository
	users repository.UserRepository
}

// NewSubscriptionService constructs a SubscriptionService.
func NewSubscriptionService(subs repository.SubscriptionRepository, users repository.UserRepository) SubscriptionService {
	return &subscriptionService{subs: subs, users: users}
}

func (s *subscriptionService) Toggle(ctx context.Context, channelID string, subscriber primitive.ObjectID) (*model.Subscription, bool, error) {
	channel, err := s.existingUser(ctx, channelID, "channel")
	if err != nil {
		return nil, false, err
	}
	if channel == subscriber {
		return nil, false, invalid("you cannot subscribe to your own channel")
	}

	removed, err := s.subs.Delete(ctx, subscriber, channel)
	if err != nil {
		return nil, false, err
	}
	if removed {
		return nil, false, nil
	}

	now := time.Now().UTC()
	sub := &model.Subscription{Subscriber: subscriber, Channel: channel, CreatedAt: now, UpdatedAt: now}
	created, err := s.subs.Create(ctx, sub)
	if errors.Is(err, repository.ErrDuplicate) {
		return sub, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func (s *subscriptionService) Subscribers(ctx context.Context, channelID string, page PageRequest) (*Page[model.Subscriber], error) {
	channel, err := s.existingUser(ctx, channelID, "channel")
	if err != nil {
		return nil, err
	}
	return listPage(page, func(pq repository.PageQuery) (*repository.PageResult[model.Subscriber], error) {
		return s.subs.Subscribers(ctx, channel, pq)
	})
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID string, page PageRequest) (*Page[model.SubscribedChannel], error) {
	subscriber, err := s.existingUser(ctx, subscriberID, "subscriber")
	if err != nil {
		return nil, err
	}
	return listPage(page, func(pq repository.PageQuery) (*repository.PageResult[model.SubscribedChannel], error) {
		return s.subs.SubscribedChannels(ctx, subscriber, pq)
	})
}

func (s *subscriptionService) existingUser(ctx context.Context, raw, what string) (primitive.ObjectID, error) {
	id, err := ParseID(raw, what)
	if err != nil {
		return id, err
	}
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return id, err
	}
	if !ok {
		return id, notFound(what + " not found")
	}
	return id, nil
}
