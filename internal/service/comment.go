package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// maxContentLength bounds comment and tweet bodies.
const maxContentLength = 5000

// CommentService manages comments on videos.
type CommentService interface {
	List(ctx context.Context, videoID string, page PageRequest) (*Page[model.CommentWithOwner], error)
	Add(ctx context.Context, videoID string, owner primitive.ObjectID, content string) (*model.CommentWithOwner, error)
	Update(ctx context.Context, commentID string, actor primitive.ObjectID, content string) (*model.CommentWithOwner, error)
	Delete(ctx context.Context, commentID string, actor primitive.ObjectID) error
}

type commentService struct {
	comments repository.CommentRepository
	videos   repository.VideoRepository
	likes    repository.LikeRepository
}

// NewCommentService constructs a CommentService.
func NewCommentService(comments repository.CommentRepository, videos repository.VideoRepository, likes repository.LikeRepository) CommentService {
	return &commentService{comments: comments, videos: videos, likes: likes}
}

func (s *commentService) List(ctx context.Context, videoID string, page PageRequest) (*Page[model.CommentWithOwner], error) {
	id, err := s.existingVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return listPage(page, func(pq repository.PageQuery) (*repository.PageResult[model.CommentWithOwner], error) {
		return s.comments.ListByVideo(ctx, id, pq)
	})
}

func (s *commentService) Add(ctx context.Context, videoID string, owner primitive.ObjectID, content string) (*model.CommentWithOwner, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	id, err := s.existingVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c, err := s.comments.Create(ctx, &model.Comment{
		Content:   content,
		Video:     id,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return s.comments.FindWithOwner(ctx, c.ID)
}

func (s *commentService) Update(ctx context.Context, commentID string, actor primitive.ObjectID, content string) (*model.CommentWithOwner, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	c, err := s.ownedComment(ctx, commentID, actor, "only the owner can edit this comment")
	if err != nil {
		return nil, err
	}
	if err := s.comments.UpdateContent(ctx, c.ID, content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("comment not found")
		}
		return nil, err
	}
	return s.comments.FindWithOwner(ctx, c.ID)
}

func (s *commentService) Delete(ctx context.Context, commentID string, actor primitive.ObjectID) error {
	c, err := s.ownedComment(ctx, commentID, actor, "only the owner can delete this comment")
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, c.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("comment not found")
		}
		return err
	}
	return s.likes.DeleteByTargets(ctx, model.LikeTargetComment, []primitive.ObjectID{c.ID})
}

func (s *commentService) existingVideo(ctx context.Context, videoID string) (primitive.ObjectID, error) {
	id, err := ParseID(videoID, "video")
	if err != nil {
		return id, err
	}
	ok, err := s.videos.Exists(ctx, id)
	if err != nil {
		return id, err
	}
	if !ok {
		return id, notFound("video not found")
	}
	return id, nil
}

func (s *commentService) ownedComment(ctx context.Context, commentID string, actor primitive.ObjectID, denied string) (*model.Comment, error) {
	id, err := ParseID(commentID, "comment")
	if err != nil {
		return nil, err
	}
	c, err := s.comments.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("comment not found")
	}
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(c.Owner, actor, denied); err != nil {
		return nil, err
	}
	return c, nil
}

// cleanContent trims content and rejects empty or oversized bodies.
func cleanContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", invalid("content is required")
	}
	if len([]rune(content)) > maxContentLength {
		return "", invalid("content is too long")
	}
	return content, nil
}
