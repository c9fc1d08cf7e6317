package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is an uploaded video. The object keys point into media storage and
// are kept so the files can be removed together with the document.
type Video struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	VideoFile    string             `json:"videoFile" bson:"videoFile"`
	VideoKey     string             `json:"-" bson:"videoKey"`
	Thumbnail    string             `json:"thumbnail" bson:"thumbnail"`
	ThumbnailKey string             `json:"-" bson:"thumbnailKey"`
	Owner        primitive.ObjectID `json:"owner" bson:"owner"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Duration     float64            `json:"duration" bson:"duration"`
	Views        int64              `json:"views" bson:"views"`
	IsPublished  bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// VideoWithOwner is a video joined with its owner's public profile.
type VideoWithOwner struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	Owner       OwnerSummary       `json:"owner" bson:"owner"`
}

// VideoDetail is the single video page: owner, like count and whether the
// viewer liked it.
type VideoDetail struct {
	VideoWithOwner `bson:",inline"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
	LikesCount     int       `json:"likesCount" bson:"likesCount"`
	IsLiked        bool      `json:"isLiked" bson:"isLiked"`
}
