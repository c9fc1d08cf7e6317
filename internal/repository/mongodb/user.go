package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// UserMongo is a MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	users *mongo.Collection
}

// NewUserMongo creates a new UserMongo repository.
func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{users: db.Collection(model.CollUsers)}
}

var _ repository.UserRepository = (*UserMongo)(nil)

// Create inserts a new user document.
func (r *UserMongo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.WatchHistory == nil {
		u.WatchHistory = []primitive.ObjectID{}
	}
	if _, err := r.users.InsertOne(ctx, u); err != nil {
		return nil, translate(err)
	}
	return u, nil
}

// FindByID fetches a single user by its ID.
func (r *UserMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return findOne[model.User](ctx, r.users, bson.M{"_id": id})
}

// FindByLogin matches on email or username; usernames are stored lowercase.
func (r *UserMongo) FindByLogin(ctx context.Context, email, username string) (*model.User, error) {
	or := loginFilter(email, username)
	if len(or) == 0 {
		return nil, repository.ErrNotFound
	}
	return findOne[model.User](ctx, r.users, bson.M{"$or": or})
}

func (r *UserMongo) FindByRefreshTokenHash(ctx context.Context, hash string) (*model.User, error) {
	return findOne[model.User](ctx, r.users, bson.M{"refreshTokenHash": hash})
}

func (r *UserMongo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	or := loginFilter(email, username)
	if len(or) == 0 {
		return false, nil
	}
	return exists(ctx, r.users, bson.M{"$or": or})
}

func (r *UserMongo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return exists(ctx, r.users, bson.M{"_id": id})
}

func (r *UserMongo) SetRefreshToken(ctx context.Context, id primitive.ObjectID, hash string, expiresAt time.Time) error {
	return updateOne(ctx, r.users, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"refreshTokenHash":      hash,
		"refreshTokenExpiresAt": expiresAt,
	}})
}

func (r *UserMongo) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	return updateOne(ctx, r.users, bson.M{"_id": id}, bson.M{"$unset": bson.M{
		"refreshTokenHash":      "",
		"refreshTokenExpiresAt": "",
	}})
}

func (r *UserMongo) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return updateOne(ctx, r.users, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password":  hash,
		"updatedAt": time.Now().UTC(),
	}})
}

// UpdateProfile sets the non-nil fields of upd and returns the stored user.
func (r *UserMongo) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd repository.UserUpdate) (*model.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.FullName != nil {
		set["fullName"] = *upd.FullName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	if upd.CoverImage != nil {
		set["coverImage"] = *upd.CoverImage
	}
	return findOneAndSet[model.User](ctx, r.users, bson.M{"_id": id}, bson.M{"$set": set})
}

// ChannelProfile counts subscribers and subscriptions for the channel and
// whether viewer is among the subscribers.
func (r *UserMongo) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*model.ChannelProfile, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"username": strings.ToLower(username)}},
		{"$lookup": bson.M{
			"from":         model.CollSubscriptions,
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}},
		{"$lookup": bson.M{
			"from":         model.CollSubscriptions,
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribedTo",
		}},
		{"$addFields": bson.M{
			"subscribersCount":          bson.M{"$size": "$subscribers"},
			"channelsSubscribedToCount": bson.M{"$size": "$subscribedTo"},
			"isSubscribed":              bson.M{"$in": bson.A{viewer, "$subscribers.subscriber"}},
		}},
		{"$project": bson.M{
			"fullName":                  1,
			"username":                  1,
			"email":                     1,
			"avatar":                    1,
			"coverImage":                1,
			"subscribersCount":          1,
			"channelsSubscribedToCount": 1,
			"isSubscribed":              1,
		}},
	}
	return aggregateOne[model.ChannelProfile](ctx, r.users, pipeline)
}

// WatchHistory resolves the user's watched videos with their owners.
func (r *UserMongo) WatchHistory(ctx context.Context, id primitive.ObjectID) ([]model.VideoWithOwner, error) {
	videoPipeline := bson.A{}
	for _, stage := range lookupOwner("owner", "owner") {
		videoPipeline = append(videoPipeline, stage)
	}
	videoPipeline = append(videoPipeline, bson.M{"$project": bson.M{"videoKey": 0, "thumbnailKey": 0}})

	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{"$lookup": bson.M{
			"from":         model.CollVideos,
			"localField":   "watchHistory",
			"foreignField": "_id",
			"as":           "watchHistory",
			"pipeline":     videoPipeline,
		}},
		{"$project": bson.M{"watchHistory": 1}},
	}

	out, err := aggregateOne[struct {
		WatchHistory []model.VideoWithOwner `bson:"watchHistory"`
	}](ctx, r.users, pipeline)
	if err != nil {
		return nil, err
	}
	if out.WatchHistory == nil {
		return []model.VideoWithOwner{}, nil
	}
	return out.WatchHistory, nil
}

func (r *UserMongo) AddToWatchHistory(ctx context.Context, id, videoID primitive.ObjectID) error {
	return updateOne(ctx, r.users, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"watchHistory": videoID}})
}

func loginFilter(email, username string) bson.A {
	or := bson.A{}
	if email = strings.TrimSpace(email); email != "" {
		or = append(or, bson.M{"email": strings.ToLower(email)})
	}
	if username = strings.TrimSpace(username); username != "" {
		or = append(or, bson.M{"username": strings.ToLower(username)})
	}
	return or
}
