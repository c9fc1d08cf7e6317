package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"vidtube/internal/repository"
)

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error",
	})
}

func TestTranslate(t *testing.T) {
	other := errors.New("boom")

	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(mongo.ErrNoDocuments), repository.ErrNotFound)
	assert.ErrorIs(t, translate(mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	}), repository.ErrDuplicate)
	assert.Equal(t, other, translate(other))
}

func TestSortStage(t *testing.T) {
	tests := []struct {
		name string
		in   repository.Sort
		want bson.D
	}{
		{"ascending with tiebreaker", repository.Sort{Field: "views"}, bson.D{{Key: "views", Value: 1}, {Key: "_id", Value: 1}}},
		{"descending with tiebreaker", repository.Sort{Field: "createdAt", Descending: true}, bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
		{"id only", repository.Sort{Field: "_id", Descending: true}, bson.D{{Key: "_id", Value: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sortStage(tt.in)["$sort"])
		})
	}
}

func TestAggregatePage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	type item struct {
		Name string `bson:"name"`
	}

	mt.Run("items and total", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.items", mtest.FirstBatch, bson.D{
			{Key: "items", Value: bson.A{bson.D{{Key: "name", Value: "a"}}, bson.D{{Key: "name", Value: "b"}}}},
			{Key: "total", Value: bson.A{bson.D{{Key: "count", Value: 7}}}},
		}))

		res, err := aggregatePage[item](context.Background(), mt.Coll, nil, repository.PageQuery{Limit: 2})

		require.NoError(mt, err)
		assert.Equal(mt, 7, res.Total)
		assert.Equal(mt, []item{{"a"}, {"b"}}, res.Items)
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.items", mtest.FirstBatch, bson.D{
			{Key: "items", Value: bson.A{}},
			{Key: "total", Value: bson.A{}},
		}))

		res, err := aggregatePage[item](context.Background(), mt.Coll, nil, repository.PageQuery{Limit: 10})

		require.NoError(mt, err)
		assert.Equal(mt, 0, res.Total)
		assert.NotNil(mt, res.Items)
		assert.Empty(mt, res.Items)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad pipeline"}))

		_, err := aggregatePage[item](context.Background(), mt.Coll, nil, repository.PageQuery{Limit: 10})

		assert.Error(mt, err)
	})
}

func TestAggregateOne_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("no results", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.items", mtest.FirstBatch))

		out, err := aggregateOne[bson.M](context.Background(), mt.Coll, nil)

		assert.Nil(mt, out)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
