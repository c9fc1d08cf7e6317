// Package model contains the documents stored in MongoDB and the read
// models produced by aggregation pipelines.
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Collection names.
const (
	CollUsers         = "users"
	CollVideos        = "videos"
	CollComments      = "comments"
	CollLikes         = "likes"
	CollTweets        = "tweets"
	CollPlaylists     = "playlists"
	CollSubscriptions = "subscriptions"
)

// OwnerSummary is the public slice of a user embedded in other resources.
type OwnerSummary struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	FullName string             `json:"fullName" bson:"fullName"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}
