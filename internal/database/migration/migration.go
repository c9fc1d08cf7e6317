package migration

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"vidtube/internal/model"
)

type indexStep struct {
	Name       string
	Collection string
	Model      mongo.IndexModel
}

func likeTargetIndex(field model.LikeTarget) mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: string(field), Value: 1}},
		Options: options.Index().
			SetName("uniq_likedBy_" + string(field)).
			SetUnique(true).
			SetPartialFilterExpression(bson.M{string(field): bson.M{"$exists": true}}),
	}
}

var steps = []indexStep{
	{
		Name:       "users_email_unique",
		Collection: model.CollUsers,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
	},
	{
		Name:       "users_username_unique",
		Collection: model.CollUsers,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("uniq_username").SetUnique(true),
		},
	},
	{
		Name:       "users_refresh_token",
		Collection: model.CollUsers,
		Model: mongo.IndexModel{
			Keys: bson.D{{Key: "refreshTokenHash", Value: 1}},
			Options: options.Index().
				SetName("idx_refreshTokenHash").
				SetPartialFilterExpression(bson.M{"refreshTokenHash": bson.M{"$exists": true}}),
		},
	},
	{
		Name:       "subscriptions_pair_unique",
		Collection: model.CollSubscriptions,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
			Options: options.Index().SetName("uniq_subscriber_channel").SetUnique(true),
		},
	},
	{
		Name:       "subscriptions_channel",
		Collection: model.CollSubscriptions,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "channel", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_channel_createdAt"),
		},
	},
	{Name: "likes_video_unique", Collection: model.CollLikes, Model: likeTargetIndex(model.LikeTargetVideo)},
	{Name: "likes_comment_unique", Collection: model.CollLikes, Model: likeTargetIndex(model.LikeTargetComment)},
	{Name: "likes_tweet_unique", Collection: model.CollLikes, Model: likeTargetIndex(model.LikeTargetTweet)},
	{
		Name:       "likes_video",
		Collection: model.CollLikes,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "video", Value: 1}},
			Options: options.Index().SetName("idx_video"),
		},
	},
	{
		Name:       "videos_owner",
		Collection: model.CollVideos,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_owner_createdAt"),
		},
	},
	{
		Name:       "videos_text",
		Collection: model.CollVideos,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_isPublished_createdAt"),
		},
	},
	{
		Name:       "comments_video",
		Collection: model.CollComments,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_video_createdAt"),
		},
	},
	{
		Name:       "tweets_owner",
		Collection: model.CollTweets,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_owner_createdAt"),
		},
	},
	{
		Name:       "playlists_owner",
		Collection: model.CollPlaylists,
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_owner_createdAt"),
		},
	},
}

// EnsureIndexes creates every index the application relies on. Index
// creation is idempotent so this runs on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_name", db.Name()))

	log.Info("db_index_sync_start", zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		name, err := db.Collection(step.Collection).Indexes().CreateOne(ctx, step.Model)
		if err != nil {
			log.Error("db_index_sync_failed",
				zap.String("index_step", step.Name),
				zap.String("collection", step.Collection),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			return fmt.Errorf("index step %s failed: %w", step.Name, err)
		}

		log.Debug("db_index_step",
			zap.String("index_step", step.Name),
			zap.String("index", name),
			zap.String("collection", step.Collection),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_index_sync_success", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
