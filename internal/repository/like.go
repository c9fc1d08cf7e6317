package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
)

// LikeRepository defines data access for likes.
type LikeRepository interface {
	// Create inserts a like. Returns ErrDuplicate if the user already likes the target.
	Create(ctx context.Context, l *model.Like) error
	// Delete removes the user's like on the target and reports whether one existed.
	Delete(ctx context.Context, target model.LikeTarget, targetID, userID primitive.ObjectID) (bool, error)
	// DeleteByTargets removes all likes pointing at any of ids.
	DeleteByTargets(ctx context.Context, target model.LikeTarget, ids []primitive.ObjectID) error

	LikedVideos(ctx context.Context, userID primitive.ObjectID, pq PageQuery) (*PageResult[model.LikedVideo], error)
}
