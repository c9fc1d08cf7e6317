package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account and, at the same time, a channel other users subscribe to.
type User struct {
	ID                    primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Username              string               `json:"username" bson:"username"`
	Email                 string               `json:"email" bson:"email"`
	FullName              string               `json:"fullName" bson:"fullName"`
	Avatar                string               `json:"avatar" bson:"avatar"`
	CoverImage            string               `json:"coverImage" bson:"coverImage"`
	WatchHistory          []primitive.ObjectID `json:"watchHistory" bson:"watchHistory"`
	Password              string               `json:"-" bson:"password"`
	RefreshTokenHash      string               `json:"-" bson:"refreshTokenHash,omitempty"`
	RefreshTokenExpiresAt *time.Time           `json:"-" bson:"refreshTokenExpiresAt,omitempty"`
	CreatedAt             time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// Summary returns the public owner view of the user.
func (u *User) Summary() OwnerSummary {
	return OwnerSummary{ID: u.ID, Username: u.Username, FullName: u.FullName, Avatar: u.Avatar}
}

// ChannelProfile is a user as seen from their channel page.
type ChannelProfile struct {
	ID                        primitive.ObjectID `json:"_id" bson:"_id"`
	Username                  string             `json:"username" bson:"username"`
	FullName                  string             `json:"fullName" bson:"fullName"`
	Email                     string             `json:"email" bson:"email"`
	Avatar                    string             `json:"avatar" bson:"avatar"`
	CoverImage                string             `json:"coverImage" bson:"coverImage"`
	SubscribersCount          int                `json:"subscribersCount" bson:"subscribersCount"`
	ChannelsSubscribedToCount int                `json:"channelsSubscribedToCount" bson:"channelsSubscribedToCount"`
	IsSubscribed              bool               `json:"isSubscribed" bson:"isSubscribed"`
}
