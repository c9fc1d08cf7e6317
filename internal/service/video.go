package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/internal/storage"
	"vidtube/internal/validation"
)

// Sort fields accepted by the public video listing.
var videoSortFields = []string{"createdAt", "views", "duration", "title"}

type VideoListInput struct {
	Query    string
	UserID   string
	SortBy   string
	SortType string
	Page     PageRequest
}

type PublishVideoInput struct {
	Title       string  `json:"title" validate:"notblank,max=200"`
	Description string  `json:"description" validate:"notblank,max=5000"`
	Duration    float64 `json:"duration" validate:"gte=0"`
	Video       *Upload `validate:"-"`
	Thumbnail   *Upload `validate:"-"`
}

type UpdateVideoInput struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,notblank,max=5000"`
	Thumbnail   *Upload `validate:"-"`
}

// VideoService covers uploading, browsing and managing videos.
type VideoService interface {
	List(ctx context.Context, in VideoListInput) (*Page[model.VideoWithOwner], error)
	Publish(ctx context.Context, owner primitive.ObjectID, in PublishVideoInput) (*model.Video, error)
	// Get returns the video page for viewer, counting the view and
	// recording it in viewer's watch history.
	Get(ctx context.Context, videoID string, viewer primitive.ObjectID) (*model.VideoDetail, error)
	Update(ctx context.Context, videoID string, actor primitive.ObjectID, in UpdateVideoInput) (*model.Video, error)
	// Delete removes the video along with its comments, likes, playlist
	// entries and stored files.
	Delete(ctx context.Context, videoID string, actor primitive.ObjectID) error
	TogglePublish(ctx context.Context, videoID string, actor primitive.ObjectID) (*model.Video, error)
}

type videoService struct {
	videos    repository.VideoRepository
	users     repository.UserRepository
	comments  repository.CommentRepository
	likes     repository.LikeRepository
	playlists repository.PlaylistRepository
	media     *mediaStore
	log       *zap.Logger
	validate  *validation.Validator
}

// VideoRepos groups the repositories the video service touches.
type VideoRepos struct {
	Videos    repository.VideoRepository
	Users     repository.UserRepository
	Comments  repository.CommentRepository
	Likes     repository.LikeRepository
	Playlists repository.PlaylistRepository
}

// NewVideoService constructs a VideoService.
func NewVideoService(repos VideoRepos, store storage.Storage, log *zap.Logger) VideoService {
	return &videoService{
		videos:    repos.Videos,
		users:     repos.Users,
		comments:  repos.Comments,
		likes:     repos.Likes,
		playlists: repos.Playlists,
		media:     &mediaStore{store: store, log: log},
		log:       log,
		validate:  validation.New(),
	}
}

func (s *videoService) List(ctx context.Context, in VideoListInput) (*Page[model.VideoWithOwner], error) {
	sort, err := parseSort(in.SortBy, in.SortType, videoSortFields...)
	if err != nil {
		return nil, err
	}
	f := repository.VideoFilter{
		Query:         strings.TrimSpace(in.Query),
		PublishedOnly: true,
		Sort:          sort,
	}
	if in.UserID != "" {
		owner, err := ParseID(in.UserID, "user")
		if err != nil {
			return nil, err
		}
		f.Owner = &owner
	}
	return listPage(in.Page, func(pq repository.PageQuery) (*repository.PageResult[model.VideoWithOwner], error) {
		return s.videos.List(ctx, f, pq)
	})
}

func (s *videoService) Publish(ctx context.Context, owner primitive.ObjectID, in PublishVideoInput) (*model.Video, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validate.Validate(in); err != nil {
		return nil, fromValidation(err)
	}
	if in.Video == nil || in.Video.Reader == nil {
		return nil, invalid("videoFile is required")
	}
	if in.Thumbnail == nil || in.Thumbnail.Reader == nil {
		return nil, invalid("thumbnail is required")
	}

	videoObj, err := s.media.put(ctx, folderVideos, "video", "videoFile", in.Video)
	if err != nil {
		return nil, err
	}
	thumbObj, err := s.media.put(ctx, folderThumbnails, "image", "thumbnail", in.Thumbnail)
	if err != nil {
		s.media.remove(ctx, videoObj.Key)
		return nil, err
	}

	now := time.Now().UTC()
	v, err := s.videos.Create(ctx, &model.Video{
		VideoFile:    videoObj.URL,
		VideoKey:     videoObj.Key,
		Thumbnail:    thumbObj.URL,
		ThumbnailKey: thumbObj.Key,
		Owner:        owner,
		Title:        in.Title,
		Description:  in.Description,
		Duration:     in.Duration,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.media.remove(ctx, videoObj.Key, thumbObj.Key)
		return nil, err
	}
	return v, nil
}

func (s *videoService) Get(ctx context.Context, videoID string, viewer primitive.ObjectID) (*model.VideoDetail, error) {
	id, err := ParseID(videoID, "video")
	if err != nil {
		return nil, err
	}
	v, err := s.findVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsPublished && v.Owner != viewer {
		return nil, notFound("video not found")
	}

	if err := s.videos.IncrementViews(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if !viewer.IsZero() {
		if err := s.users.AddToWatchHistory(ctx, viewer, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	d, err := s.videos.Detail(ctx, id, viewer)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("video not found")
	}
	return d, err
}

func (s *videoService) Update(ctx context.Context, videoID string, actor primitive.ObjectID, in UpdateVideoInput) (*model.Video, error) {
	id, err := ParseID(videoID, "video")
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		in.Title = &t
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		in.Description = &d
	}
	if in.Title == nil && in.Description == nil && in.Thumbnail == nil {
		return nil, invalid("title, description or thumbnail is required")
	}
	if err := s.validate.Validate(in); err != nil {
		return nil, fromValidation(err)
	}

	v, err := s.findVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(v.Owner, actor, "only the owner can edit this video"); err != nil {
		return nil, err
	}

	upd := repository.VideoUpdate{Title: in.Title, Description: in.Description}
	var newThumb storage.ObjectInfo
	if in.Thumbnail != nil {
		newThumb, err = s.media.put(ctx, folderThumbnails, "image", "thumbnail", in.Thumbnail)
		if err != nil {
			return nil, err
		}
		upd.Thumbnail = &newThumb.URL
		upd.ThumbnailKey = &newThumb.Key
	}

	updated, err := s.videos.Update(ctx, id, upd)
	if err != nil {
		s.media.remove(ctx, newThumb.Key)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("video not found")
		}
		return nil, err
	}
	if newThumb.Key != "" {
		s.media.remove(ctx, v.ThumbnailKey)
	}
	return updated, nil
}

func (s *videoService) Delete(ctx context.Context, videoID string, actor primitive.ObjectID) error {
	id, err := ParseID(videoID, "video")
	if err != nil {
		return err
	}
	v, err := s.findVideo(ctx, id)
	if err != nil {
		return err
	}
	if err := ensureOwner(v.Owner, actor, "only the owner can delete this video"); err != nil {
		return err
	}

	if err := s.videos.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("video not found")
		}
		return err
	}

	commentIDs, err := s.comments.DeleteByVideo(ctx, id)
	if err != nil {
		return err
	}
	if err := s.likes.DeleteByTargets(ctx, model.LikeTargetComment, commentIDs); err != nil {
		return err
	}
	if err := s.likes.DeleteByTargets(ctx, model.LikeTargetVideo, []primitive.ObjectID{id}); err != nil {
		return err
	}
	if err := s.playlists.RemoveVideoEverywhere(ctx, id); err != nil {
		return err
	}
	s.media.remove(ctx, v.VideoKey, v.ThumbnailKey)

	s.log.Info("video_deleted",
		zap.String("video_id", id.Hex()),
		zap.Int("comments_removed", len(commentIDs)),
	)
	return nil
}

func (s *videoService) TogglePublish(ctx context.Context, videoID string, actor primitive.ObjectID) (*model.Video, error) {
	id, err := ParseID(videoID, "video")
	if err != nil {
		return nil, err
	}
	v, err := s.findVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(v.Owner, actor, "only the owner can change publish status"); err != nil {
		return nil, err
	}
	updated, err := s.videos.SetPublished(ctx, id, !v.IsPublished)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("video not found")
	}
	return updated, err
}

func (s *videoService) findVideo(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	v, err := s.videos.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("video not found")
	}
	return v, err
}
