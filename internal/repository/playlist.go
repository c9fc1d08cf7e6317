package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
)

// PlaylistUpdate lists the editable playlist fields. Nil fields are left untouched.
type PlaylistUpdate struct {
	Name        *string
	Description *string
}

// PlaylistRepository defines data access for playlists.
type PlaylistRepository interface {
	Create(ctx context.Context, p *model.Playlist) (*model.Playlist, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Playlist, error)
	Update(ctx context.Context, id primitive.ObjectID, upd PlaylistUpdate) (*model.Playlist, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*model.Playlist, error)
	// RemoveVideoEverywhere drops videoID from every playlist that contains it.
	RemoveVideoEverywhere(ctx context.Context, videoID primitive.ObjectID) error

	ListByOwner(ctx context.Context, owner primitive.ObjectID, pq PageQuery) (*PageResult[model.PlaylistSummary], error)
	Detail(ctx context.Context, id primitive.ObjectID) (*model.PlaylistDetail, error)
}
