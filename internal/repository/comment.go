package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
)

// CommentRepository defines data access for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	FindWithOwner(ctx context.Context, id primitive.ObjectID) (*model.CommentWithOwner, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	ListByVideo(ctx context.Context, videoID primitive.ObjectID, pq PageQuery) (*PageResult[model.CommentWithOwner], error)
	// DeleteByVideo removes every comment on a video and returns their IDs.
	DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) ([]primitive.ObjectID, error)
}
