package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeTarget names the kind of document a like points at. The value is also
// the field name used in the likes collection.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// Like records that a user liked exactly one video, comment or tweet.
type Like struct {
	ID        primitive.ObjectID  `json:"_id" bson:"_id,omitempty"`
	Video     *primitive.ObjectID `json:"video,omitempty" bson:"video,omitempty"`
	Comment   *primitive.ObjectID `json:"comment,omitempty" bson:"comment,omitempty"`
	Tweet     *primitive.ObjectID `json:"tweet,omitempty" bson:"tweet,omitempty"`
	LikedBy   primitive.ObjectID  `json:"likedBy" bson:"likedBy"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// NewLike builds a like for the given target.
func NewLike(target LikeTarget, targetID, userID primitive.ObjectID, now time.Time) *Like {
	l := &Like{LikedBy: userID, CreatedAt: now, UpdatedAt: now}
	switch target {
	case LikeTargetVideo:
		l.Video = &targetID
	case LikeTargetComment:
		l.Comment = &targetID
	case LikeTargetTweet:
		l.Tweet = &targetID
	}
	return l
}

// LikedVideo is an entry in a user's liked videos list.
type LikedVideo struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	Video     VideoWithOwner     `json:"video" bson:"video"`
}
