package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// SubscriptionMongo is a MongoDB implementation of repository.SubscriptionRepository.
type SubscriptionMongo struct {
	subs *mongo.Collection
}

// NewSubscriptionMongo creates a new SubscriptionMongo repository.
func NewSubscriptionMongo(db *mongo.Database) *SubscriptionMongo {
	return &SubscriptionMongo{subs: db.Collection(model.CollSubscriptions)}
}

var _ repository.SubscriptionRepository = (*SubscriptionMongo)(nil)

func (r *SubscriptionMongo) Create(ctx context.Context, s *model.Subscription) (*model.Subscription, error) {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if _, err := r.subs.InsertOne(ctx, s); err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func (r *SubscriptionMongo) Delete(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	res, err := r.subs.DeleteOne(ctx, bson.M{"subscriber": subscriber, "channel": channel})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Subscribers lists the users subscribed to channel, newest first.
func (r *SubscriptionMongo) Subscribers(ctx context.Context, channel primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.Subscriber], error) {
	pipeline := []bson.M{
		{"$match": bson.M{"channel": channel}},
		newestFirst,
	}
	pipeline = append(pipeline, lookupOwner("subscriber", "subscriber")...)
	pipeline = append(pipeline,
		bson.M{"$match": bson.M{"subscriber": bson.M{"$ne": nil}}},
		bson.M{"$project": bson.M{"_id": 1, "subscriber": 1, "createdAt": 1}},
	)
	return aggregatePage[model.Subscriber](ctx, r.subs, pipeline, pq)
}

// SubscribedChannels lists the channels subscriber follows with each
// channel's own subscriber count.
func (r *SubscriptionMongo) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.SubscribedChannel], error) {
	pipeline := []bson.M{
		{"$match": bson.M{"subscriber": subscriber}},
		newestFirst,
		{"$lookup": bson.M{
			"from":         model.CollUsers,
			"localField":   "channel",
			"foreignField": "_id",
			"as":           "channel",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         model.CollSubscriptions,
					"localField":   "_id",
					"foreignField": "channel",
					"as":           "subscribers",
					"pipeline":     bson.A{bson.M{"$project": bson.M{"_id": 1}}},
				}},
				bson.M{"$project": bson.M{
					"username":         1,
					"fullName":         1,
					"avatar":           1,
					"subscribersCount": bson.M{"$size": "$subscribers"},
				}},
			},
		}},
		{"$unwind": "$channel"},
		{"$project": bson.M{"_id": 1, "channel": 1, "createdAt": 1}},
	}
	return aggregatePage[model.SubscribedChannel](ctx, r.subs, pipeline, pq)
}
