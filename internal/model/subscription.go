package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription links a subscriber to a channel. Both are users.
type Subscription struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Subscriber is an entry in a channel's subscriber list.
type Subscriber struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Subscriber OwnerSummary       `json:"subscriber" bson:"subscriber"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// SubscribedChannel is an entry in the list of channels a user follows.
type SubscribedChannel struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Channel   ChannelSummary     `json:"channel" bson:"channel"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ChannelSummary is an owner summary plus its subscriber count.
type ChannelSummary struct {
	OwnerSummary     `bson:",inline"`
	SubscribersCount int `json:"subscribersCount" bson:"subscribersCount"`
}
