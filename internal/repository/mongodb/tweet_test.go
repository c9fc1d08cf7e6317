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

func TestTweetMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("create", func(mt *mtest.T) {
		repo := NewTweetMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		tw, err := repo.Create(context.Background(), &model.Tweet{Content: "hello"})

		require.NoError(mt, err)
		assert.False(mt, tw.ID.IsZero())
	})

	mt.Run("find with owner", func(mt *mtest.T) {
		repo := NewTweetMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.tweets", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "content", Value: "hello"},
			{Key: "owner", Value: bson.D{{Key: "username", Value: "alice"}}},
		}))

		tw, err := repo.FindWithOwner(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.Equal(mt, "alice", tw.Owner.Username)
	})

	mt.Run("list by owner", func(mt *mtest.T) {
		repo := NewTweetMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.tweets", mtest.FirstBatch, bson.D{
			{Key: "items", Value: bson.A{bson.D{{Key: "content", Value: "hello"}}}},
			{Key: "total", Value: bson.A{bson.D{{Key: "count", Value: 21}}}},
		}))

		res, err := repo.ListByOwner(context.Background(), primitive.NewObjectID(), repository.PageQuery{Limit: 1, Offset: 20})

		require.NoError(mt, err)
		assert.Equal(mt, 21, res.Total)
		assert.Len(mt, res.Items, 1)
	})

	mt.Run("exists", func(mt *mtest.T) {
		repo := NewTweetMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.tweets", mtest.FirstBatch))

		ok, err := repo.Exists(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.False(mt, ok)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewTweetMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.ErrorIs(mt, repo.Delete(context.Background(), primitive.NewObjectID()), repository.ErrNotFound)
	})
}
