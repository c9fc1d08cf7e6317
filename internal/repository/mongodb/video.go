package mongodb

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// VideoMongo is a MongoDB implementation of repository.VideoRepository.
type VideoMongo struct {
	videos *mongo.Collection
}

// NewVideoMongo creates a new VideoMongo repository.
func NewVideoMongo(db *mongo.Database) *VideoMongo {
	return &VideoMongo{videos: db.Collection(model.CollVideos)}
}

var _ repository.VideoRepository = (*VideoMongo)(nil)

// hiddenVideoFields are never returned from pipelines.
var hiddenVideoFields = bson.M{"$project": bson.M{"videoKey": 0, "thumbnailKey": 0}}

func (r *VideoMongo) Create(ctx context.Context, v *model.Video) (*model.Video, error) {
	if v.ID.IsZero() {
		v.ID = primitive.NewObjectID()
	}
	if _, err := r.videos.InsertOne(ctx, v); err != nil {
		return nil, translate(err)
	}
	return v, nil
}

func (r *VideoMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	return findOne[model.Video](ctx, r.videos, bson.M{"_id": id})
}

func (r *VideoMongo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return exists(ctx, r.videos, bson.M{"_id": id})
}

func (r *VideoMongo) Update(ctx context.Context, id primitive.ObjectID, upd repository.VideoUpdate) (*model.Video, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Thumbnail != nil {
		set["thumbnail"] = *upd.Thumbnail
	}
	if upd.ThumbnailKey != nil {
		set["thumbnailKey"] = *upd.ThumbnailKey
	}
	return findOneAndSet[model.Video](ctx, r.videos, bson.M{"_id": id}, bson.M{"$set": set})
}

func (r *VideoMongo) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (*model.Video, error) {
	return findOneAndSet[model.Video](ctx, r.videos, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"isPublished": published,
		"updatedAt":   time.Now().UTC(),
	}})
}

func (r *VideoMongo) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	return updateOne(ctx, r.videos, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
}

func (r *VideoMongo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.videos, bson.M{"_id": id})
}

// List searches title and description case-insensitively and joins owners.
func (r *VideoMongo) List(ctx context.Context, f repository.VideoFilter, pq repository.PageQuery) (*repository.PageResult[model.VideoWithOwner], error) {
	match := bson.M{}
	if f.PublishedOnly {
		match["isPublished"] = true
	}
	if f.Owner != nil {
		match["owner"] = *f.Owner
	}
	if f.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	pipeline := []bson.M{
		{"$match": match},
		sortStage(f.Sort),
	}
	pipeline = append(pipeline, lookupOwner("owner", "owner")...)
	pipeline = append(pipeline, hiddenVideoFields)

	return aggregatePage[model.VideoWithOwner](ctx, r.videos, pipeline, pq)
}

// Detail joins the owner and the video's likes.
func (r *VideoMongo) Detail(ctx context.Context, id, viewer primitive.ObjectID) (*model.VideoDetail, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
	}
	pipeline = append(pipeline, lookupOwner("owner", "owner")...)
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         model.CollLikes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
			"pipeline":     bson.A{bson.M{"$project": bson.M{"likedBy": 1}}},
		}},
		bson.M{"$addFields": bson.M{
			"likesCount": bson.M{"$size": "$likes"},
			"isLiked":    bson.M{"$in": bson.A{viewer, "$likes.likedBy"}},
		}},
		bson.M{"$project": bson.M{"likes": 0, "videoKey": 0, "thumbnailKey": 0}},
	)
	return aggregateOne[model.VideoDetail](ctx, r.videos, pipeline)
}
