package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/internal/validation"
)

type CreatePlaylistInput struct {
	Name        string `json:"name" validate:"notblank,max=200"`
	Description string `json:"description" validate:"notblank,max=2000"`
}

type UpdatePlaylistInput struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,notblank,max=2000"`
}

// PlaylistService manages user curated playlists.
type PlaylistService interface {
	Create(ctx context.Context, owner primitive.ObjectID, in CreatePlaylistInput) (*model.Playlist, error)
	ListByUser(ctx context.Context, userID string, page PageRequest) (*Page[model.PlaylistSummary], error)
	Get(ctx context.Context, playlistID string) (*model.PlaylistDetail, error)
	AddVideo(ctx context.Context, videoID, playlistID string, actor primitive.ObjectID) (*model.Playlist, error)
	RemoveVideo(ctx context.Context, videoID, playlistID string, actor primitive.ObjectID) (*model.Playlist, error)
	Update(ctx context.Context, playlistID string, actor primitive.ObjectID, in UpdatePlaylistInput) (*model.Playlist, error)
	Delete(ctx context.Context, playlistID string, actor primitive.ObjectID) error
}

type playlistService struct {
	playlists repository.PlaylistRepository
	videos    repository.VideoRepository
	users     repository.UserRepository
	validate  *validation.Validator
}

// NewPlaylistService constructs a PlaylistService.
func NewPlaylistService(playlists repository.PlaylistRepository, videos repository.VideoRepository, users repository.UserRepository) PlaylistService {
	return &playlistService{playlists: playlists, videos: videos, users: users, validate: validation.New()}
}

func (s *playlistService) Create(ctx context.Context, owner primitive.ObjectID, in CreatePlaylistInput) (*model.Playlist, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validate.Validate(in); err != nil {
		return nil, fromValidation(err)
	}
	now := time.Now().UTC()
	return s.playlists.Create(ctx, &model.Playlist{
		Name:        in.Name,
		Description: in.Description,
		Videos:      []primitive.ObjectID{},
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *playlistService) ListByUser(ctx context.Context, userID string, page PageRequest) (*Page[model.PlaylistSummary], error) {
	id, err := ParseID(userID, "user")
	if err != nil {
		return nil, err
	}
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("user not found")
	}
	return listPage(page, func(pq repository.PageQuery) (*repository.PageResult[model.PlaylistSummary], error) {
		return s.playlists.ListByOwner(ctx, id, pq)
	})
}

func (s *playlistService) Get(ctx context.Context, playlistID string) (*model.PlaylistDetail, error) {
	id, err := ParseID(playlistID, "playlist")
	if err != nil {
		return nil, err
	}
	d, err := s.playlists.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("playlist not found")
	}
	return d, err
}

func (s *playlistService) AddVideo(ctx context.Context, videoID, playlistID string, actor primitive.ObjectID) (*model.Playlist, error) {
	vid, err := ParseID(videoID, "video")
	if err != nil {
		return nil, err
	}
	p, err := s.ownedPlaylist(ctx, playlistID, actor, "only the owner can add videos to this playlist")
	if err != nil {
		return nil, err
	}
	ok, err := s.videos.Exists(ctx, vid)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("video not found")
	}
	if p.HasVideo(vid) {
		return nil, invalid("video already exists in playlist")
	}
	return s.mapPlaylistErr(s.playlists.AddVideo(ctx, p.ID, vid))
}

func (s *playlistService) RemoveVideo(ctx context.Context, videoID, playlistID string, actor primitive.ObjectID) (*model.Playlist, error) {
	vid, err := ParseID(videoID, "video")
	if err != nil {
		return nil, err
	}
	p, err := s.ownedPlaylist(ctx, playlistID, actor, "only the owner can remove videos from this playlist")
	if err != nil {
		return nil, err
	}
	if !p.HasVideo(vid) {
		return nil, notFound("video not found in playlist")
	}
	return s.mapPlaylistErr(s.playlists.RemoveVideo(ctx, p.ID, vid))
}

func (s *playlistService) Update(ctx context.Context, playlistID string, actor primitive.ObjectID, in UpdatePlaylistInput) (*model.Playlist, error) {
	if in.Name == nil && in.Description == nil {
		return nil, invalid("name or description is required")
	}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		in.Name = &n
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		in.Description = &d
	}
	if err := s.validate.Validate(in); err != nil {
		return nil, fromValidation(err)
	}
	p, err := s.ownedPlaylist(ctx, playlistID, actor, "only the owner can edit this playlist")
	if err != nil {
		return nil, err
	}
	return s.mapPlaylistErr(s.playlists.Update(ctx, p.ID, repository.PlaylistUpdate{Name: in.Name, Description: in.Description}))
}

func (s *playlistService) Delete(ctx context.Context, playlistID string, actor primitive.ObjectID) error {
	p, err := s.ownedPlaylist(ctx, playlistID, actor, "only the owner can delete this playlist")
	if err != nil {
		return err
	}
	_, err = s.mapPlaylistErr(nil, s.playlists.Delete(ctx, p.ID))
	return err
}

func (s *playlistService) ownedPlaylist(ctx context.Context, playlistID string, actor primitive.ObjectID, denied string) (*model.Playlist, error) {
	id, err := ParseID(playlistID, "playlist")
	if err != nil {
		return nil, err
	}
	p, err := s.mapPlaylistErr(s.playlists.FindByID(ctx, id))
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(p.Owner, actor, denied); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *playlistService) mapPlaylistErr(p *model.Playlist, err error) (*model.Playlist, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("playlist not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
