// Package mongodb implements the repository interfaces on MongoDB.
// Joins are expressed as aggregation pipelines; list queries return the
// requested page and the total count in a single round trip via $facet.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// ownerProjection is the public subset of a user embedded in other resources.
var ownerProjection = bson.M{"username": 1, "fullName": 1, "avatar": 1}

// translate maps driver errors onto repository sentinel errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	default:
		return err
	}
}

// lookupOwner replaces the ObjectID at localField with the referenced
// user's public summary, stored under as.
func lookupOwner(localField, as string) []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         model.CollUsers,
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
			"pipeline":     bson.A{bson.M{"$project": ownerProjection}},
		}},
		{"$addFields": bson.M{as: bson.M{"$first": "$" + as}}},
	}
}

// sortStage orders by s.Field with _id as a tiebreaker so pages are stable.
func sortStage(s repository.Sort) bson.M {
	dir := 1
	if s.Descending {
		dir = -1
	}
	if s.Field == "_id" {
		return bson.M{"$sort": bson.D{{Key: "_id", Value: dir}}}
	}
	return bson.M{"$sort": bson.D{{Key: s.Field, Value: dir}, {Key: "_id", Value: dir}}}
}

var newestFirst = sortStage(repository.Sort{Field: "createdAt", Descending: true})

type facetResult[T any] struct {
	Items []T `bson:"items"`
	Total []struct {
		Count int `bson:"count"`
	} `bson:"total"`
}

// aggregatePage runs pipeline and returns one page of results plus the
// number of documents the pipeline yields before pagination.
func aggregatePage[T any](ctx context.Context, coll *mongo.Collection, pipeline []bson.M, pq repository.PageQuery) (*repository.PageResult[T], error) {
	stages := make([]bson.M, 0, len(pipeline)+1)
	stages = append(stages, pipeline...)
	stages = append(stages, bson.M{"$facet": bson.M{
		"items": bson.A{bson.M{"$skip": pq.Offset}, bson.M{"$limit": pq.Limit}},
		"total": bson.A{bson.M{"$count": "count"}},
	}})

	cur, err := coll.Aggregate(ctx, stages)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []facetResult[T]
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}

	res := &repository.PageResult[T]{Items: make([]T, 0)}
	if len(out) > 0 {
		if out[0].Items != nil {
			res.Items = out[0].Items
		}
		if len(out[0].Total) > 0 {
			res.Total = out[0].Total[0].Count
		}
	}
	return res, nil
}

// aggregateOne runs pipeline and decodes its first result.
func aggregateOne[T any](ctx context.Context, coll *mongo.Collection, pipeline []bson.M) (*T, error) {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, err
		}
		return nil, repository.ErrNotFound
	}
	var out T
	if err := cur.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// findOneAndSet applies a $set and returns the document after the update.
func findOneAndSet[T any](ctx context.Context, coll *mongo.Collection, filter any, update any) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out T
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func exists(ctx context.Context, coll *mongo.Collection, filter any) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := coll.FindOne(ctx, filter, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// deleteByID removes a single document and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, coll *mongo.Collection, filter any) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// updateOne applies update and reports ErrNotFound when nothing matched.
func updateOne(ctx context.Context, coll *mongo.Collection, filter, update any) error {
	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
