package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
	repoMocks "vidtube/internal/repository/mocks"
)

func TestAverageViews(t *testing.T) {
	tests := []struct {
		views, videos, want int64
	}{
		{0, 0, 0},
		{100, 0, 0},
		{10, 4, 3},
		{9, 4, 2},
		{300, 3, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, averageViews(tt.views, tt.videos), "%d/%d", tt.views, tt.videos)
	}
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	repo := new(repoMocks.MockDashboardRepository)
	repo.On("ChannelStats", ctx, owner).Return(&model.ChannelStats{TotalVideos: 4, TotalViews: 10}, nil)

	stats, err := NewDashboardService(repo).Stats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.AverageViewsPerVideo)
	repo.AssertExpectations(t)
}

func TestDashboardService_Stats_Error(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	boom := errors.New("aggregate failed")

	repo := new(repoMocks.MockDashboardRepository)
	repo.On("ChannelStats", ctx, owner).Return(nil, boom)

	_, err := NewDashboardService(repo).Stats(ctx, owner)
	assert.ErrorIs(t, err, boom)
}

func TestDashboardService_Videos(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	repo := new(repoMocks.MockDashboardRepository)
	repo.On("ChannelVideos", ctx, owner, repository.Sort{Field: "likesCount"}, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.ChannelVideo]{Items: []model.ChannelVideo{{LikesCount: 1}}, Total: 1}, nil)

	svc := NewDashboardService(repo)
	page, err := svc.Videos(ctx, owner, "likesCount", "asc", PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Docs, 1)
	repo.AssertExpectations(t)

	_, err = svc.Videos(ctx, owner, "secret", "asc", PageRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}
