package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"vidtube/internal/repository"
)

func TestDashboardMongo_ChannelStats(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("aggregates counters", func(mt *mtest.T) {
		repo := NewDashboardMongo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.subscriptions", mtest.FirstBatch, bson.D{{Key: "n", Value: 12}}),
			mtest.CreateCursorResponse(0, "db.videos", mtest.FirstBatch, bson.D{
				{Key: "totalVideos", Value: 3},
				{Key: "totalViews", Value: 100},
				{Key: "totalLikes", Value: 9},
			}),
			mtest.CreateCursorResponse(0, "db.likes", mtest.FirstBatch, bson.D{{Key: "n", Value: 5}}),
			mtest.CreateCursorResponse(0, "db.videos", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "latest"}, {Key: "views", Value: 7}},
			),
		)

		stats, err := repo.ChannelStats(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.EqualValues(mt, 12, stats.TotalSubscribers)
		assert.EqualValues(mt, 3, stats.TotalVideos)
		assert.EqualValues(mt, 100, stats.TotalViews)
		assert.EqualValues(mt, 9, stats.TotalLikesOnVideos)
		assert.EqualValues(mt, 5, stats.UserContentLikes)
		require.Len(mt, stats.RecentVideos, 1)
		assert.Equal(mt, "latest", stats.RecentVideos[0].Title)
	})

	mt.Run("channel without videos", func(mt *mtest.T) {
		repo := NewDashboardMongo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.subscriptions", mtest.FirstBatch, bson.D{{Key: "n", Value: 0}}),
			mtest.CreateCursorResponse(0, "db.videos", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "db.likes", mtest.FirstBatch, bson.D{{Key: "n", Value: 0}}),
			mtest.CreateCursorResponse(0, "db.videos", mtest.FirstBatch),
		)

		stats, err := repo.ChannelStats(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.Zero(mt, stats.TotalVideos)
		assert.NotNil(mt, stats.RecentVideos)
		assert.Empty(mt, stats.RecentVideos)
	})
}

func TestDashboardMongo_ChannelVideos(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("engagement counters", func(mt *mtest.T) {
		repo := NewDashboardMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.videos", mtest.FirstBatch, bson.D{
			{Key: "items", Value: bson.A{bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "title", Value: "popular"},
				{Key: "likesCount", Value: 8},
				{Key: "commentsCount", Value: 2},
			}}},
			{Key: "total", Value: bson.A{bson.D{{Key: "count", Value: 1}}}},
		}))

		res, err := repo.ChannelVideos(context.Background(), primitive.NewObjectID(),
			repository.Sort{Field: "likesCount", Descending: true}, repository.PageQuery{Limit: 10})

		require.NoError(mt, err)
		require.Len(mt, res.Items, 1)
		assert.Equal(mt, 8, res.Items[0].LikesCount)
		assert.Equal(mt, 2, res.Items[0].CommentsCount)
	})
}
