package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// recentVideoCount is how many videos the stats endpoint lists as recent activity.
const recentVideoCount = 5

// DashboardMongo is a MongoDB implementation of repository.DashboardRepository.
type DashboardMongo struct {
	videos *mongo.Collection
	likes  *mongo.Collection
	subs   *mongo.Collection
}

// NewDashboardMongo creates a new DashboardMongo repository.
func NewDashboardMongo(db *mongo.Database) *DashboardMongo {
	return &DashboardMongo{
		videos: db.Collection(model.CollVideos),
		likes:  db.Collection(model.CollLikes),
		subs:   db.Collection(model.CollSubscriptions),
	}
}

var _ repository.DashboardRepository = (*DashboardMongo)(nil)

type videoTotals struct {
	TotalVideos int64 `bson:"totalVideos"`
	TotalViews  int64 `bson:"totalViews"`
	TotalLikes  int64 `bson:"totalLikes"`
}

// ChannelStats gathers the owner's counters. AverageViewsPerVideo is left
// for the caller to derive.
func (r *DashboardMongo) ChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	stats := &model.ChannelStats{RecentVideos: make([]model.RecentVideo, 0)}

	subscribers, err := r.subs.CountDocuments(ctx, bson.M{"channel": owner})
	if err != nil {
		return nil, err
	}
	stats.TotalSubscribers = subscribers

	totals, err := aggregateOne[videoTotals](ctx, r.videos, []bson.M{
		{"$match": bson.M{"owner": owner}},
		{"$lookup": bson.M{
			"from":         model.CollLikes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
			"pipeline":     bson.A{bson.M{"$project": bson.M{"_id": 1}}},
		}},
		{"$group": bson.M{
			"_id":         nil,
			"totalVideos": bson.M{"$sum": 1},
			"totalViews":  bson.M{"$sum": "$views"},
			"totalLikes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
		}},
	})
	switch {
	case err == nil:
		stats.TotalVideos = totals.TotalVideos
		stats.TotalViews = totals.TotalViews
		stats.TotalLikesOnVideos = totals.TotalLikes
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	contentLikes, err := r.likes.CountDocuments(ctx, bson.M{"likedBy": owner})
	if err != nil {
		return nil, err
	}
	stats.UserContentLikes = contentLikes

	opts := options.Find().
		SetProjection(bson.M{"title": 1, "views": 1, "createdAt": 1}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(recentVideoCount)
	cur, err := r.videos.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &stats.RecentVideos); err != nil {
		return nil, err
	}
	if stats.RecentVideos == nil {
		stats.RecentVideos = make([]model.RecentVideo, 0)
	}
	return stats, nil
}

// ChannelVideos lists every video of owner, published or not, with
// engagement counters. Sorting on likesCount or commentsCount is allowed.
func (r *DashboardMongo) ChannelVideos(ctx context.Context, owner primitive.ObjectID, sort repository.Sort, pq repository.PageQuery) (*repository.PageResult[model.ChannelVideo], error) {
	countOnly := bson.A{bson.M{"$project": bson.M{"_id": 1}}}
	pipeline := []bson.M{
		{"$match": bson.M{"owner": owner}},
		{"$lookup": bson.M{
			"from":         model.CollLikes,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "likes",
			"pipeline":     countOnly,
		}},
		{"$lookup": bson.M{
			"from":         model.CollComments,
			"localField":   "_id",
			"foreignField": "video",
			"as":           "comments",
			"pipeline":     countOnly,
		}},
		{"$addFields": bson.M{
			"likesCount":    bson.M{"$size": "$likes"},
			"commentsCount": bson.M{"$size": "$comments"},
		}},
		{"$project": bson.M{"likes": 0, "comments": 0, "videoKey": 0, "thumbnailKey": 0, "owner": 0}},
		sortStage(sort),
	}
	return aggregatePage[model.ChannelVideo](ctx, r.videos, pipeline, pq)
}
