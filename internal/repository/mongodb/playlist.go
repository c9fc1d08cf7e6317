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

// PlaylistMongo is a MongoDB implementation of repository.PlaylistRepository.
type PlaylistMongo struct {
	playlists *mongo.Collection
}

// NewPlaylistMongo creates a new PlaylistMongo repository.
func NewPlaylistMongo(db *mongo.Database) *PlaylistMongo {
	return &PlaylistMongo{playlists: db.Collection(model.CollPlaylists)}
}

var _ repository.PlaylistRepository = (*PlaylistMongo)(nil)

func (r *PlaylistMongo) Create(ctx context.Context, p *model.Playlist) (*model.Playlist, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}
	if _, err := r.playlists.InsertOne(ctx, p); err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *PlaylistMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Playlist, error) {
	return findOne[model.Playlist](ctx, r.playlists, bson.M{"_id": id})
}

func (r *PlaylistMongo) Update(ctx context.Context, id primitive.ObjectID, upd repository.PlaylistUpdate) (*model.Playlist, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	return findOneAndSet[model.Playlist](ctx, r.playlists, bson.M{"_id": id}, bson.M{"$set": set})
}

func (r *PlaylistMongo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.playlists, bson.M{"_id": id})
}

// AddVideo appends videoID unless the playlist already holds it.
func (r *PlaylistMongo) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (*model.Playlist, error) {
	return findOneAndSet[model.Playlist](ctx, r.playlists, bson.M{"_id": id}, bson.M{
		"$addToSet": bson.M{"videos": videoID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *PlaylistMongo) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (*model.Playlist, error) {
	return findOneAndSet[model.Playlist](ctx, r.playlists, bson.M{"_id": id}, bson.M{
		"$pull": bson.M{"videos": videoID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *PlaylistMongo) RemoveVideoEverywhere(ctx context.Context, videoID primitive.ObjectID) error {
	_, err := r.playlists.UpdateMany(ctx,
		bson.M{"videos": videoID},
		bson.M{"$pull": bson.M{"videos": videoID}},
	)
	return err
}

// ListByOwner returns a user's playlists, newest first, with video totals.
func (r *PlaylistMongo) ListByOwner(ctx context.Context, owner primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.PlaylistSummary], error) {
	pipeline := []bson.M{
		{"$match": bson.M{"owner": owner}},
		newestFirst,
	}
	pipeline = append(pipeline, lookupOwner("owner", "owner")...)
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         model.CollVideos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDocs",
			"pipeline":     bson.A{bson.M{"$project": bson.M{"duration": 1}}},
		}},
		bson.M{"$addFields": bson.M{
			"totalVideos":   bson.M{"$size": "$videoDocs"},
			"totalDuration": bson.M{"$sum": "$videoDocs.duration"},
		}},
		bson.M{"$project": bson.M{"videoDocs": 0, "videos": 0}},
	)
	return aggregatePage[model.PlaylistSummary](ctx, r.playlists, pipeline, pq)
}

// Detail resolves the playlist's videos in the order they were added.
// References to deleted videos are dropped.
func (r *PlaylistMongo) Detail(ctx context.Context, id primitive.ObjectID) (*model.PlaylistDetail, error) {
	videoPipeline := bson.A{bson.M{"$project": bson.M{"videoKey": 0, "thumbnailKey": 0}}}
	for _, stage := range lookupOwner("owner", "owner") {
		videoPipeline = append(videoPipeline, stage)
	}

	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
	}
	pipeline = append(pipeline, lookupOwner("owner", "owner")...)
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         model.CollVideos,
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videoDocs",
			"pipeline":     videoPipeline,
		}},
		bson.M{"$addFields": bson.M{
			"videos": bson.M{"$filter": bson.M{
				"input": bson.M{"$map": bson.M{
					"input": "$videos",
					"as":    "vid",
					"in": bson.M{"$first": bson.M{"$filter": bson.M{
						"input": "$videoDocs",
						"as":    "doc",
						"cond":  bson.M{"$eq": bson.A{"$$doc._id", "$$vid"}},
					}}},
				}},
				"as":   "v",
				"cond": bson.M{"$ne": bson.A{"$$v", nil}},
			}},
		}},
		bson.M{"$addFields": bson.M{
			"totalVideos":   bson.M{"$size": "$videos"},
			"totalDuration": bson.M{"$sum": "$videos.duration"},
		}},
		bson.M{"$project": bson.M{"videoDocs": 0}},
	)
	return aggregateOne[model.PlaylistDetail](ctx, r.playlists, pipeline)
}
