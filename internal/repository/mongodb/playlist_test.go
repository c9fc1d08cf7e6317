package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

func TestPlaylistMongo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("empty video list", func(mt *mtest.T) {
		repo := NewPlaylistMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p, err := repo.Create(context.Background(), &model.Playlist{Name: "watch later"})

		require.NoError(mt, err)
		assert.NotNil(mt, p.Videos)
		assert.False(mt, p.ID.IsZero())
	})
}

func TestPlaylistMongo_AddRemoveVideo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	id, video := primitive.NewObjectID(), primitive.NewObjectID()

	mt.Run("add", func(mt *mtest.T) {
		repo := NewPlaylistMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "videos", Value: bson.A{video}},
		}}))

		p, err := repo.AddVideo(context.Background(), id, video)

		require.NoError(mt, err)
		assert.True(mt, p.HasVideo(video))
	})

	mt.Run("remove", func(mt *mtest.T) {
		repo := NewPlaylistMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "videos", Value: bson.A{}},
		}}))

		p, err := repo.RemoveVideo(context.Background(), id, video)

		require.NoError(mt, err)
		assert.False(mt, p.HasVideo(video))
	})

	mt.Run("remove everywhere", func(mt *mtest.T) {
		repo := NewPlaylistMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}, bson.E{Key: "nModified", Value: 2}))

		assert.NoError(mt, repo.RemoveVideoEverywhere(context.Background(), video))
	})
}

func TestPlaylistMongo_Reads(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("list with totals", func(mt *mtest.T) {
		repo := NewPlaylistMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.playlists", mtest.FirstBatch, bson.D{
			{Key: "items", Value: bson.A{bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "mix"},
				{Key: "totalVideos", Value: 2},
				{Key: "totalDuration", Value: 95.5},
			}}},
			{Key: "total", Value: bson.A{bson.D{{Key: "count", Value: 1}}}},
		}))

		res, err := repo.ListByOwner(context.Background(), primitive.NewObjectID(), repository.PageQuery{Limit: 10})

		require.NoError(mt, err)
		require.Len(mt, res.Items, 1)
		assert.Equal(mt, 2, res.Items[0].TotalVideos)
		assert.Equal(mt, 95.5, res.Items[0].TotalDuration)
	})

	mt.Run("detail", func(mt *mtest.T) {
		repo := NewPlaylistMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.playlists", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "mix"},
			{Key: "totalVideos", Value: 2},
			{Key: "videos", Value: bson.A{
				bson.D{{Key: "title", Value: "b"}},
				bson.D{{Key: "title", Value: "a"}},
			}},
		}))

		d, err := repo.Detail(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		require.Len(mt, d.Videos, 2)
		assert.Equal(mt, "b", d.Videos[0].Title)
		assert.Equal(mt, "mix", d.Name)
	})

	mt.Run("detail missing", func(mt *mtest.T) {
		repo := NewPlaylistMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.playlists", mtest.FirstBatch))

		_, err := repo.Detail(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
