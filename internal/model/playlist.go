package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist is an ordered list of videos curated by its owner.
type Playlist struct {
	ID          primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// HasVideo reports whether the playlist already contains videoID.
func (p *Playlist) HasVideo(videoID primitive.ObjectID) bool {
	for _, v := range p.Videos {
		if v == videoID {
			return true
		}
	}
	return false
}

// PlaylistSummary is a playlist in a listing, with computed totals.
type PlaylistSummary struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	TotalVideos   int                `json:"totalVideos" bson:"totalVideos"`
	TotalDuration float64            `json:"totalDuration" bson:"totalDuration"`
	Owner         OwnerSummary       `json:"owner" bson:"owner"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistDetail is a playlist with its videos resolved in playlist order.
type PlaylistDetail struct {
	PlaylistSummary `bson:",inline"`
	Videos          []VideoWithOwner `json:"videos" bson:"videos"`
}
