package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChannelStats summarises a channel for its owner's dashboard.
type ChannelStats struct {
	TotalSubscribers     int64         `json:"totalSubscribers"`
	TotalVideos          int64         `json:"totalVideos"`
	TotalViews           int64         `json:"totalViews"`
	TotalLikesOnVideos   int64         `json:"totalLikesOnVideos"`
	UserContentLikes     int64         `json:"userContentLikes"`
	RecentVideos         []RecentVideo `json:"recentVideos"`
	AverageViewsPerVideo int64         `json:"averageViewsPerVideo"`
}

// RecentVideo is the short form used in the dashboard activity list.
type RecentVideo struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Views     int64              `json:"views" bson:"views"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ChannelVideo is an owner's video with engagement counters.
type ChannelVideo struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	Thumbnail     string             `json:"thumbnail" bson:"thumbnail"`
	VideoFile     string             `json:"videoFile" bson:"videoFile"`
	Duration      float64            `json:"duration" bson:"duration"`
	Views         int64              `json:"views" bson:"views"`
	IsPublished   bool               `json:"isPublished" bson:"isPublished"`
	LikesCount    int                `json:"likesCount" bson:"likesCount"`
	CommentsCount int                `json:"commentsCount" bson:"commentsCount"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
