package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// TweetMongo is a MongoDB implementation of repository.TweetRepository.
type TweetMongo struct {
	tweets *mongo.Collection
}

// NewTweetMongo creates a new TweetMongo repository.
func NewTweetMongo(db *mongo.Database) *TweetMongo {
	return &TweetMongo{tweets: db.Collection(model.CollTweets)}
}

var _ repository.TweetRepository = (*TweetMongo)(nil)

func (r *TweetMongo) Create(ctx context.Context, t *model.Tweet) (*model.Tweet, error) {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if _, err := r.tweets.InsertOne(ctx, t); err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (r *TweetMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	return findOne[model.Tweet](ctx, r.tweets, bson.M{"_id": id})
}

func (r *TweetMongo) FindWithOwner(ctx context.Context, id primitive.ObjectID) (*model.TweetWithOwner, error) {
	pipeline := append([]bson.M{{"$match": bson.M{"_id": id}}}, lookupOwner("owner", "owner")...)
	return aggregateOne[model.TweetWithOwner](ctx, r.tweets, pipeline)
}

func (r *TweetMongo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return exists(ctx, r.tweets, bson.M{"_id": id})
}

func (r *TweetMongo) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	return updateOne(ctx, r.tweets, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"content":   content,
		"updatedAt": time.Now().UTC(),
	}})
}

func (r *TweetMongo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.tweets, bson.M{"_id": id})
}

// ListByOwner returns a user's tweets, newest first.
func (r *TweetMongo) ListByOwner(ctx context.Context, owner primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.TweetWithOwner], error) {
	pipeline := []bson.M{
		{"$match": bson.M{"owner": owner}},
		newestFirst,
	}
	pipeline = append(pipeline, lookupOwner("owner", "owner")...)
	return aggregatePage[model.TweetWithOwner](ctx, r.tweets, pipeline, pq)
}
