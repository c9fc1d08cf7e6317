package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// LikeService toggles likes and lists liked videos.
type LikeService interface {
	// Toggle likes or unlikes the target and reports whether it is now liked.
	Toggle(ctx context.Context, target model.LikeTarget, targetID string, user primitive.ObjectID) (bool, error)
	LikedVideos(ctx context.Context, user primitive.ObjectID, page PageRequest) (*Page[model.LikedVideo], error)
}

// existenceChecker is satisfied by every repository with an Exists method.
type existenceChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type likeService struct {
	likes   repository.LikeRepository
	targets map[model.LikeTarget]existenceChecker
}

// NewLikeService constructs a LikeService.
func NewLikeService(likes repository.LikeRepository, videos repository.VideoRepository, comments repository.CommentRepository, tweets repository.TweetRepository) LikeService {
	return &likeService{
		likes: likes,
		targets: map[model.LikeTarget]existenceChecker{
			model.LikeTargetVideo:   videos,
			model.LikeTargetComment: comments,
			model.LikeTargetTweet:   tweets,
		},
	}
}

// Toggle deletes first and inserts only if there was nothing to delete.
// The unique index turns a concurrent double insert into a duplicate key
// error, which means the target is liked.
func (s *likeService) Toggle(ctx context.Context, target model.LikeTarget, targetID string, user primitive.ObjectID) (bool, error) {
	checker, ok := s.targets[target]
	if !ok {
		return false, invalid("unknown like target")
	}
	id, err := ParseID(targetID, string(target))
	if err != nil {
		return false, err
	}
	exists, err := checker.Exists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, notFound(string(target) + " not found")
	}

	removed, err := s.likes.Delete(ctx, target, id, user)
	if err != nil {
		return false, err
	}
	if removed {
		return false, nil
	}

	err = s.likes.Create(ctx, model.NewLike(target, id, user, time.Now().UTC()))
	if err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return false, err
	}
	return true, nil
}

func (s *likeService) LikedVideos(ctx context.Context, user primitive.ObjectID, page PageRequest) (*Page[model.LikedVideo], error) {
	return listPage(page, func(pq repository.PageQuery) (*repository.PageResult[model.LikedVideo], error) {
		return s.likes.LikedVideos(ctx, user, pq)
	})
}
