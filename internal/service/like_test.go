package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
	repoMocks "vidtube/internal/repository/mocks"
)

func TestLikeService_Toggle(t *testing.T) {
	ctx := context.Background()
	user := primitive.NewObjectID()
	target := primitive.NewObjectID()
	isLikeOf := func(l *model.Like) bool {
		return l.Comment != nil && *l.Comment == target && l.LikedBy == user && l.Video == nil
	}

	tests := []struct {
		name       string
		targetID   string
		setupMocks func(*repoMocks.MockLikeRepository, *repoMocks.MockCommentRepository)
		wantLiked  bool
		wantErr    error
	}{
		{
			name:     "like",
			targetID: target.Hex(),
			setupMocks: func(likes *repoMocks.MockLikeRepository, comments *repoMocks.MockCommentRepository) {
				comments.On("Exists", ctx, target).Return(true, nil)
				likes.On("Delete", ctx, model.LikeTargetComment, target, user).Return(false, nil)
				likes.On("Create", ctx, mock.MatchedBy(isLikeOf)).Return(nil)
			},
			wantLiked: true,
		},
		{
			name:     "unlike",
			targetID: target.Hex(),
			setupMocks: func(likes *repoMocks.MockLikeRepository, comments *repoMocks.MockCommentRepository) {
				comments.On("Exists", ctx, target).Return(true, nil)
				likes.On("Delete", ctx, model.LikeTargetComment, target, user).Return(true, nil)
			},
			wantLiked: false,
		},
		{
			name:     "concurrent like counts as liked",
			targetID: target.Hex(),
			setupMocks: func(likes *repoMocks.MockLikeRepository, comments *repoMocks.MockCommentRepository) {
				comments.On("Exists", ctx, target).Return(true, nil)
				likes.On("Delete", ctx, model.LikeTargetComment, target, user).Return(false, nil)
				likes.On("Create", ctx, mock.MatchedBy(isLikeOf)).Return(repository.ErrDuplicate)
			},
			wantLiked: true,
		},
		{
			name:     "missing target",
			targetID: target.Hex(),
			setupMocks: func(_ *repoMocks.MockLikeRepository, comments *repoMocks.MockCommentRepository) {
				comments.On("Exists", ctx, target).Return(false, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "bad id",
			targetID:   "zz",
			setupMocks: func(*repoMocks.MockLikeRepository, *repoMocks.MockCommentRepository) {},
			wantErr:    ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			likes := new(repoMocks.MockLikeRepository)
			comments := new(repoMocks.MockCommentRepository)
			tt.setupMocks(likes, comments)

			svc := NewLikeService(likes, new(repoMocks.MockVideoRepository), comments, new(repoMocks.MockTweetRepository))
			liked, err := svc.Toggle(ctx, model.LikeTargetComment, tt.targetID, user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLiked, liked)
			}
			likes.AssertExpectations(t)
			comments.AssertExpectations(t)
		})
	}
}

func TestLikeService_Toggle_UnknownTarget(t *testing.T) {
	svc := NewLikeService(nil, nil, nil, nil)
	_, err := svc.Toggle(context.Background(), model.LikeTarget("playlist"), primitive.NewObjectID().Hex(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLikeService_Toggle_StoreError(t *testing.T) {
	ctx := context.Background()
	user := primitive.NewObjectID()
	target := primitive.NewObjectID()
	boom := errors.New("write failed")

	likes := new(repoMocks.MockLikeRepository)
	videos := new(repoMocks.MockVideoRepository)
	videos.On("Exists", ctx, target).Return(true, nil)
	likes.On("Delete", ctx, model.LikeTargetVideo, target, user).Return(false, nil)
	likes.On("Create", ctx, mock.Anything).Return(boom)

	_, err := NewLikeService(likes, videos, nil, nil).Toggle(ctx, model.LikeTargetVideo, target.Hex(), user)
	assert.ErrorIs(t, err, boom)
}

func TestLikeService_LikedVideos(t *testing.T) {
	ctx := context.Background()
	user := primitive.NewObjectID()
	likes := new(repoMocks.MockLikeRepository)
	likes.On("LikedVideos", ctx, user, repository.PageQuery{Limit: 100, Offset: 0}).
		Return(&repository.PageResult[model.LikedVideo]{}, nil)

	page, err := NewLikeService(likes, nil, nil, nil).LikedVideos(ctx, user, PageRequest{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
	assert.Empty(t, page.Docs)
	likes.AssertExpectations(t)
}
