package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// CommentMongo is a MongoDB implementation of repository.CommentRepository.
type CommentMongo struct {
	comments *mongo.Collection
}

// NewCommentMongo creates a new CommentMongo repository.
func NewCommentMongo(db *mongo.Database) *CommentMongo {
	return &CommentMongo{comments: db.Collection(model.CollComments)}
}

var _ repository.CommentRepository = (*CommentMongo)(nil)

func (r *CommentMongo) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if _, err := r.comments.InsertOne(ctx, c); err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (r *CommentMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	return findOne[model.Comment](ctx, r.comments, bson.M{"_id": id})
}

func (r *CommentMongo) FindWithOwner(ctx context.Context, id primitive.ObjectID) (*model.CommentWithOwner, error) {
	pipeline := append([]bson.M{{"$match": bson.M{"_id": id}}}, lookupOwner("owner", "owner")...)
	return aggregateOne[model.CommentWithOwner](ctx, r.comments, pipeline)
}

func (r *CommentMongo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return exists(ctx, r.comments, bson.M{"_id": id})
}

func (r *CommentMongo) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	return updateOne(ctx, r.comments, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"content":   content,
		"updatedAt": time.Now().UTC(),
	}})
}

func (r *CommentMongo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.comments, bson.M{"_id": id})
}

// ListByVideo returns a video's comments, newest first.
func (r *CommentMongo) ListByVideo(ctx context.Context, videoID primitive.ObjectID, pq repository.PageQuery) (*repository.PageResult[model.CommentWithOwner], error) {
	pipeline := []bson.M{
		{"$match": bson.M{"video": videoID}},
		newestFirst,
	}
	pipeline = append(pipeline, lookupOwner("owner", "owner")...)
	return aggregatePage[model.CommentWithOwner](ctx, r.comments, pipeline, pq)
}

func (r *CommentMongo) DeleteByVideo(ctx context.Context, videoID primitive.ObjectID) ([]primitive.ObjectID, error) {
	filter := bson.M{"video": videoID}
	cur, err := r.comments.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	if _, err := r.comments.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return nil, err
	}
	return ids, nil
}
