package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
)

// DashboardRepository runs the channel owner's analytics queries.
type DashboardRepository interface {
	ChannelStats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error)
	ChannelVideos(ctx context.Context, owner primitive.ObjectID, sort Sort, pq PageQuery) (*PageResult[model.ChannelVideo], error)
}
