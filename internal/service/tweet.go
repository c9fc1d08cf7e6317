package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
)

// TweetService manages short channel posts.
type TweetService interface {
	Create(ctx context.Context, owner primitive.ObjectID, content string) (*model.TweetWithOwner, error)
	ListByUser(ctx context.Context, userID string, page PageRequest) (*Page[model.TweetWithOwner], error)
	Update(ctx context.Context, tweetID string, actor primitive.ObjectID, content string) (*model.TweetWithOwner, error)
	Delete(ctx context.Context, tweetID string, actor primitive.ObjectID) error
}

type tweetService struct {
	tweets repository.TweetRepository
	users  repository.UserRepository
	likes  repository.LikeRepository
}

// NewTweetService constructs a TweetService.
func NewTweetService(tweets repository.TweetRepository, users repository.UserRepository, likes repository.LikeRepository) TweetService {
	return &tweetService{tweets: tweets, users: users, likes: likes}
}

func (s *tweetService) Create(ctx context.Context, owner primitive.ObjectID, content string) (*model.TweetWithOwner, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	t, err := s.tweets.Create(ctx, &model.Tweet{Content: content, Owner: owner, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}
	return s.tweets.FindWithOwner(ctx, t.ID)
}

func (s *tweetService) ListByUser(ctx context.Context, userID string, page PageRequest) (*Page[model.TweetWithOwner], error) {
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
	return listPage(page, func(pq repository.PageQuery) (*repository.PageResult[model.TweetWithOwner], error) {
		return s.tweets.ListByOwner(ctx, id, pq)
	})
}

func (s *tweetService) Update(ctx context.Context, tweetID string, actor primitive.ObjectID, content string) (*model.TweetWithOwner, error) {
	content, err := cleanContent(content)
	if err != nil {
		return nil, err
	}
	t, err := s.ownedTweet(ctx, tweetID, actor, "only the owner can edit this tweet")
	if err != nil {
		return nil, err
	}
	if err := s.tweets.UpdateContent(ctx, t.ID, content); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("tweet not found")
		}
		return nil, err
	}
	return s.tweets.FindWithOwner(ctx, t.ID)
}

func (s *tweetService) Delete(ctx context.Context, tweetID string, actor primitive.ObjectID) error {
	t, err := s.ownedTweet(ctx, tweetID, actor, "only the owner can delete this tweet")
	if err != nil {
		return err
	}
	if err := s.tweets.Delete(ctx, t.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("tweet not found")
		}
		return err
	}
	return s.likes.DeleteByTargets(ctx, model.LikeTargetTweet, []primitive.ObjectID{t.ID})
}

func (s *tweetService) ownedTweet(ctx context.Context, tweetID string, actor primitive.ObjectID, denied string) (*model.Tweet, error) {
	id, err := ParseID(tweetID, "tweet")
	if err != nil {
		return nil, err
	}
	t, err := s.tweets.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("tweet not found")
	}
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(t.Owner, actor, denied); err != nil {
		return nil, err
	}
	return t, nil
}
