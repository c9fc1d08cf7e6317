package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

func TestLikeMongo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	like := func() *model.Like {
		return model.NewLike(model.LikeTargetVideo, primitive.NewObjectID(), primitive.NewObjectID(), time.Now())
	}

	mt.Run("inserted", func(mt *mtest.T) {
		repo := NewLikeMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(mt, repo.Create(context.Background(), like()))
	})

	mt.Run("already liked", func(mt *mtest.T) {
		repo := NewLikeMongo(mt.DB)
		mt.AddMockResponses(duplicateKeyResponse())

		assert.ErrorIs(mt, repo.Create(context.Background(), like()), repository.ErrDuplicate)
	})
}

func TestLikeMongo_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	tests := []struct {
		name    string
		n       int
		removed bool
	}{
		{"removed existing like", 1, true},
		{"nothing to remove", 0, false},
	}
	for _, tt := range tests {
		mt.Run(tt.name, func(mt *mtest.T) {
			repo := NewLikeMongo(mt.DB)
			mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: tt.n}))

			removed, err := repo.Delete(context.Background(), model.LikeTargetComment, primitive.NewObjectID(), primitive.NewObjectID())

			require.NoError(mt, err)
			assert.Equal(mt, tt.removed, removed)
		})
	}
}

func TestLikeMongo_DeleteByTargets(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("no ids skips the round trip", func(mt *mtest.T) {
		repo := NewLikeMongo(mt.DB)

		assert.NoError(mt, repo.DeleteByTargets(context.Background(), model.LikeTargetComment, nil))
	})

	mt.Run("deletes", func(mt *mtest.T) {
		repo := NewLikeMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		err := repo.DeleteByTargets(context.Background(), model.LikeTargetComment, []primitive.ObjectID{primitive.NewObjectID()})

		assert.NoError(mt, err)
	})
}

func TestLikeMongo_LikedVideos(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("page", func(mt *mtest.T) {
		repo := NewLikeMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.likes", mtest.FirstBatch, bson.D{
			{Key: "items", Value: bson.A{bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "video", Value: bson.D{
					{Key: "title", Value: "liked one"},
					{Key: "owner", Value: bson.D{{Key: "username", Value: "carol"}}},
				}},
			}}},
			{Key: "total", Value: bson.A{bson.D{{Key: "count", Value: 1}}}},
		}))

		res, err := repo.LikedVideos(context.Background(), primitive.NewObjectID(), repository.PageQuery{Limit: 10})

		require.NoError(mt, err)
		require.Len(mt, res.Items, 1)
		assert.Equal(mt, "liked one", res.Items[0].Video.Title)
		assert.Equal(mt, "carol", res.Items[0].Video.Owner.Username)
	})
}
