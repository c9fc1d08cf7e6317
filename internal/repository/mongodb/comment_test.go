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

func TestCommentMongo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("success", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c, err := repo.Create(context.Background(), &model.Comment{Content: "nice"})

		require.NoError(mt, err)
		assert.False(mt, c.ID.IsZero())
	})
}

func TestCommentMongo_ListByVideo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("page", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.comments", mtest.FirstBatch, bson.D{
			{Key: "items", Value: bson.A{
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "content", Value: "second"}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "content", Value: "first"}},
			}},
			{Key: "total", Value: bson.A{bson.D{{Key: "count", Value: 2}}}},
		}))

		res, err := repo.ListByVideo(context.Background(), primitive.NewObjectID(), repository.PageQuery{Limit: 10})

		require.NoError(mt, err)
		assert.Equal(mt, 2, res.Total)
		assert.Equal(mt, "second", res.Items[0].Content)
	})
}

func TestCommentMongo_UpdateContent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateContent(context.Background(), primitive.NewObjectID(), "edited")

		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestCommentMongo_DeleteByVideo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("returns removed ids", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.comments", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: a}},
				bson.D{{Key: "_id", Value: b}},
			),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		ids, err := repo.DeleteByVideo(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.Equal(mt, []primitive.ObjectID{a, b}, ids)
	})

	mt.Run("no comments", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.comments", mtest.FirstBatch))

		ids, err := repo.DeleteByVideo(context.Background(), primitive.NewObjectID())

		require.NoError(mt, err)
		assert.Empty(mt, ids)
	})
}
