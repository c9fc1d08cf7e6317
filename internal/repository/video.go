package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
)

// VideoFilter narrows the public video listing.
type VideoFilter struct {
	Query         string
	Owner         *primitive.ObjectID
	PublishedOnly bool
	Sort          Sort
}

// VideoUpdate lists the editable video fields. Nil fields are left untouched.
type VideoUpdate struct {
	Title        *string
	Description  *string
	Thumbnail    *string
	ThumbnailKey *string
}

// VideoRepository defines data access for videos.
type VideoRepository interface {
	Create(ctx context.Context, v *model.Video) (*model.Video, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, upd VideoUpdate) (*model.Video, error)
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*model.Video, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	List(ctx context.Context, f VideoFilter, pq PageQuery) (*PageResult[model.VideoWithOwner], error)
	// Detail joins the owner, counts likes and reports whether viewer liked the video.
	Detail(ctx context.Context, id, viewer primitive.ObjectID) (*model.VideoDetail, error)
}
