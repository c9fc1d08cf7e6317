package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/service"
)

type MockPlaylistService struct {
	mock.Mock
}

func (m *MockPlaylistService) Create(ctx context.Context, owner primitive.ObjectID, in service.CreatePlaylistInput) (*model.Playlist, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistService) ListByUser(ctx context.Context, userID string, page service.PageRequest) (*service.Page[model.PlaylistSummary], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Page[model.PlaylistSummary]), args.Error(1)
}

func (m *MockPlaylistService) Get(ctx context.Context, playlistID string) (*model.PlaylistDetail, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistService) AddVideo(ctx context.Context, videoID, playlistID string, actor primitive.ObjectID) (*model.Playlist, error) {
	args := m.Called(ctx, videoID, playlistID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistService) RemoveVideo(ctx context.Context, videoID, playlistID string, actor primitive.ObjectID) (*model.Playlist, error) {
	args := m.Called(ctx, videoID, playlistID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Update(ctx context.Context, playlistID string, actor primitive.ObjectID, in service.UpdatePlaylistInput) (*model.Playlist, error) {
	args := m.Called(ctx, playlistID, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistService) Delete(ctx context.Context, playlistID string, actor primitive.ObjectID) error {
	args := m.Called(ctx, playlistID, actor)
	return args.Error(0)
}

var _ service.PlaylistService = (*MockPlaylistService)(nil)
