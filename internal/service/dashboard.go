package service

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

var channelVideoSortFields = []string{"createdAt", "views", "duration", "title", "likesCount", "commentsCount"}

// DashboardService reports on the caller's own channel.
type DashboardService interface {
	Stats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error)
	Videos(ctx context.Context, owner primitive.ObjectID, sortBy, sortType string, page PageRequest) (*Page[model.ChannelVideo], error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Stats(ctx context.Context, owner primitive.ObjectID) (*model.ChannelStats, error) {
	stats, err := s.repo.ChannelStats(ctx, owner)
	if err != nil {
		return nil, err
	}
	stats.AverageViewsPerVideo = averageViews(stats.TotalViews, stats.TotalVideos)
	return stats, nil
}

func (s *dashboardService) Videos(ctx context.Context, owner primitive.ObjectID, sortBy, sortType string, page PageRequest) (*Page[model.ChannelVideo], error) {
	sort, err := parseSort(sortBy, sortType, channelVideoSortFields...)
	if err != nil {
		return nil, err
	}
	return listPage(page, func(pq repository.PageQuery) (*repository.PageResult[model.ChannelVideo], error) {
		return s.repo.ChannelVideos(ctx, owner, sort, pq)
	})
}

// averageViews rounds half away from zero; zero videos yields zero.
func averageViews(views, videos int64) int64 {
	if videos == 0 {
		return 0
	}
	return int64(math.Round(float64(views) / float64(videos)))
}
