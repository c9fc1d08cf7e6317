package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
)

// UserUpdate lists the profile fields that may change. Nil fields are left untouched.
type UserUpdate struct {
	FullName   *string
	Email      *string
	Avatar     *string
	CoverImage *string
}

// UserRepository defines data access for users.
type UserRepository interface {
	// Create inserts a user. Returns ErrDuplicate if email or username is taken.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	// FindByLogin matches either the email or the username, whichever is set.
	FindByLogin(ctx context.Context, email, username string) (*model.User, error)
	FindByRefreshTokenHash(ctx context.Context, hash string) (*model.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)

	SetRefreshToken(ctx context.Context, id primitive.ObjectID, hash string, expiresAt time.Time) error
	ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
	// UpdateProfile applies upd and returns the updated user.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd UserUpdate) (*model.User, error)

	// ChannelProfile resolves a channel by username with subscriber counters
	// computed relative to viewer.
	ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*model.ChannelProfile, error)
	WatchHistory(ctx context.Context, id primitive.ObjectID) ([]model.VideoWithOwner, error)
	AddToWatchHistory(ctx context.Context, id, videoID primitive.ObjectID) error
}
