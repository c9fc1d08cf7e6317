package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// LikeMongo is a MongoDB implementation of repository.LikeRepository.
type LikeMongo struct {
	likes *mongo.Collection
}

// NewLikeMongo creates a new LikeMongo repository.
func NewLikeMongo(db *mongo.Database) *LikeMongo {
	return &LikeMongo{likes: db.Collection(model.CollLikes)}
}

var _ repository.LikeRepository = (*LikeMongo)(nil)

func (r *LikeMongo) Create(ctx context.Context, l *model.Like) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	_, err := r.likes.InsertOne(ctx, l)
	return translate(err)
}

func (r *LikeMongo) Delete(ctx context.Context, target model.LikeTarget, targetID, userID primitive.ObjectID) (bool, error) {
	res, err := r.likes.DeleteOne(ctx, bson.M{string(target): targetID, "likedBy": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *LikeMongo) DeleteByTargets(ctx context.Context, target model.LikeTarget, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.likes.DeleteMany(ctx, bson.M{string(target): bson.M{"$in": ids}})
	return err
}

// LikedVideos lists the videos a user liked, most recent like first.
// Likes whose video no longer exists are skipped.
func (r *LikeMongo) LikedVideos(ctx context.Context, userID primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.LikedVideo], error) {
	pipeline := []bson.M{
		{"$match": bson.M{"likedBy": userID, "video": bson.M{"$exists": true}}},
		{"$lookup": bson.M{
			"from":         model.CollVideos,
			"localField":   "video",
			"foreignField": "_id",
			"as":           "video",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"videoKey": 0, "thumbnailKey": 0}},
			},
		}},
		{"$unwind": "$video"},
	}
	pipeline = append(pipeline, lookupOwner("video.owner", "video.owner")...)
	pipeline = append(pipeline,
		newestFirst,
		bson.M{"$project": bson.M{"_id": 1, "createdAt": 1, "video": 1}},
	)
	return aggregatePage[model.LikedVideo](ctx, r.likes, pipeline, pq)
}
