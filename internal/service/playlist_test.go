package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
	repoMocks "vidtube/internal/repository/mocks"
)

func TestPlaylistService_Create(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()

	playlists := new(repoMocks.MockPlaylistRepository)
	playlists.On("Create", ctx, mock.MatchedBy(func(p *model.Playlist) bool {
		return p.Name == "Favourites" && p.Owner == owner && p.Videos != nil && len(p.Videos) == 0
	})).Return(&model.Playlist{ID: primitive.NewObjectID(), Name: "Favourites"}, nil)

	svc := NewPlaylistService(playlists, nil, nil)
	p, err := svc.Create(ctx, owner, CreatePlaylistInput{Name: " Favourites ", Description: "best of"})
	require.NoError(t, err)
	assert.Equal(t, "Favourites", p.Name)
	playlists.AssertExpectations(t)

	_, err = svc.Create(ctx, owner, CreatePlaylistInput{Name: "  ", Description: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaylistService_AddVideo(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	tests := []struct {
		name       string
		actor      primitive.ObjectID
		setupMocks func(*repoMocks.MockPlaylistRepository, *repoMocks.MockVideoRepository)
		wantErr    error
	}{
		{
			name:  "success",
			actor: owner,
			setupMocks: func(playlists *repoMocks.MockPlaylistRepository, videos *repoMocks.MockVideoRepository) {
				playlists.On("FindByID", ctx, playlistID).Return(&model.Playlist{ID: playlistID, Owner: owner}, nil)
				videos.On("Exists", ctx, videoID).Return(true, nil)
				playlists.On("AddVideo", ctx, playlistID, videoID).
					Return(&model.Playlist{ID: playlistID, Owner: owner, Videos: []primitive.ObjectID{videoID}}, nil)
			},
		},
		{
			name:  "already present",
			actor: owner,
			setupMocks: func(playlists *repoMocks.MockPlaylistRepository, videos *repoMocks.MockVideoRepository) {
				playlists.On("FindByID", ctx, playlistID).
					Return(&model.Playlist{ID: playlistID, Owner: owner, Videos: []primitive.ObjectID{videoID}}, nil)
				videos.On("Exists", ctx, videoID).Return(true, nil)
			},
			wantErr: ErrValidation,
		},
		{
			name:  "video missing",
			actor: owner,
			setupMocks: func(playlists *repoMocks.MockPlaylistRepository, videos *repoMocks.MockVideoRepository) {
				playlists.On("FindByID", ctx, playlistID).Return(&model.Playlist{ID: playlistID, Owner: owner}, nil)
				videos.On("Exists", ctx, videoID).Return(false, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:  "not owner",
			actor: primitive.NewObjectID(),
			setupMocks: func(playlists *repoMocks.MockPlaylistRepository, _ *repoMocks.MockVideoRepository) {
				playlists.On("FindByID", ctx, playlistID).Return(&model.Playlist{ID: playlistID, Owner: owner}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:  "playlist missing",
			actor: owner,
			setupMocks: func(playlists *repoMocks.MockPlaylistRepository, _ *repoMocks.MockVideoRepository) {
				playlists.On("FindByID", ctx, playlistID).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playlists := new(repoMocks.MockPlaylistRepository)
			videos := new(repoMocks.MockVideoRepository)
			tt.setupMocks(playlists, videos)

			p, err := NewPlaylistService(playlists, videos, nil).AddVideo(ctx, videoID.Hex(), playlistID.Hex(), tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.True(t, p.HasVideo(videoID))
			}
			playlists.AssertExpectations(t)
			videos.AssertExpectations(t)
		})
	}
}

func TestPlaylistService_RemoveVideo(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	t.Run("not in playlist", func(t *testing.T) {
		playlists := new(repoMocks.MockPlaylistRepository)
		playlists.On("FindByID", ctx, playlistID).Return(&model.Playlist{ID: playlistID, Owner: owner}, nil)

		_, err := NewPlaylistService(playlists, nil, nil).RemoveVideo(ctx, videoID.Hex(), playlistID.Hex(), owner)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("removed", func(t *testing.T) {
		playlists := new(repoMocks.MockPlaylistRepository)
		playlists.On("FindByID", ctx, playlistID).
			Return(&model.Playlist{ID: playlistID, Owner: owner, Videos: []primitive.ObjectID{videoID}}, nil)
		playlists.On("RemoveVideo", ctx, playlistID, videoID).
			Return(&model.Playlist{ID: playlistID, Owner: owner, Videos: []primitive.ObjectID{}}, nil)

		p, err := NewPlaylistService(playlists, nil, nil).RemoveVideo(ctx, videoID.Hex(), playlistID.Hex(), owner)
		require.NoError(t, err)
		assert.Empty(t, p.Videos)
		playlists.AssertExpectations(t)
	})
}

func TestPlaylistService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	id := primitive.NewObjectID()
	name := "Renamed"

	t.Run("update requires a field", func(t *testing.T) {
		_, err := NewPlaylistService(nil, nil, nil).Update(ctx, id.Hex(), owner, UpdatePlaylistInput{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("update", func(t *testing.T) {
		playlists := new(repoMocks.MockPlaylistRepository)
		playlists.On("FindByID", ctx, id).Return(&model.Playlist{ID: id, Owner: owner}, nil)
		playlists.On("Update", ctx, id, repository.PlaylistUpdate{Name: &name}).
			Return(&model.Playlist{ID: id, Name: name}, nil)

		p, err := NewPlaylistService(playlists, nil, nil).Update(ctx, id.Hex(), owner, UpdatePlaylistInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
		playlists.AssertExpectations(t)
	})

	t.Run("delete races with another delete", func(t *testing.T) {
		playlists := new(repoMocks.MockPlaylistRepository)
		playlists.On("FindByID", ctx, id).Return(&model.Playlist{ID: id, Owner: owner}, nil)
		playlists.On("Delete", ctx, id).Return(repository.ErrNotFound)

		err := NewPlaylistService(playlists, nil, nil).Delete(ctx, id.Hex(), owner)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPlaylistService_Get(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()
	playlists := new(repoMocks.MockPlaylistRepository)
	playlists.On("Detail", ctx, id).Return(nil, repository.ErrNotFound)

	_, err := NewPlaylistService(playlists, nil, nil).Get(ctx, id.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}
