package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
)

// TweetRepository defines data access for tweets.
type TweetRepository interface {
	Create(ctx context.Context, t *model.Tweet) (*model.Tweet, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error)
	FindWithOwner(ctx context.Context, id primitive.ObjectID) (*model.TweetWithOwner, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	ListByOwner(ctx context.Context, owner primitive.ObjectID, pq PageQuery) (*PageResult[model.TweetWithOwner], error)
}
