package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/model"
	"vidtube/internal/repository"
	repoMocks "vidtube/internal/repository/mocks"
)

func TestCleanContent(t *testing.T) {
	got, err := cleanContent("  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = cleanContent(" \n ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = cleanContent(strings.Repeat("é", maxContentLength))
	assert.NoError(t, err)

	_, err = cleanContent(strings.Repeat("a", maxContentLength+1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCommentService_Add(t *testing.T) {
	ctx := context.Background()
	videoID := primitive.NewObjectID()
	owner := primitive.NewObjectID()
	commentID := primitive.NewObjectID()

	tests := []struct {
		name       string
		videoID    string
		content    string
		setupMocks func(*repoMocks.MockCommentRepository, *repoMocks.MockVideoRepository)
		wantErr    error
	}{
		{
			name:    "success",
			videoID: videoID.Hex(),
			content: " nice video ",
			setupMocks: func(comments *repoMocks.MockCommentRepository, videos *repoMocks.MockVideoRepository) {
				videos.On("Exists", ctx, videoID).Return(true, nil)
				comments.On("Create", ctx, mock.MatchedBy(func(c *model.Comment) bool {
					return c.Content == "nice video" && c.Video == videoID && c.Owner == owner
				})).Return(&model.Comment{ID: commentID}, nil)
				comments.On("FindWithOwner", ctx, commentID).
					Return(&model.CommentWithOwner{ID: commentID, Content: "nice video"}, nil)
			},
		},
		{
			name:       "empty content",
			videoID:    videoID.Hex(),
			content:    "   ",
			setupMocks: func(*repoMocks.MockCommentRepository, *repoMocks.MockVideoRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "invalid video id",
			videoID:    "abc",
			content:    "hi",
			setupMocks: func(*repoMocks.MockCommentRepository, *repoMocks.MockVideoRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:    "video missing",
			videoID: videoID.Hex(),
			content: "hi",
			setupMocks: func(_ *repoMocks.MockCommentRepository, videos *repoMocks.MockVideoRepository) {
				videos.On("Exists", ctx, videoID).Return(false, nil)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := new(repoMocks.MockCommentRepository)
			videos := new(repoMocks.MockVideoRepository)
			tt.setupMocks(comments, videos)

			svc := NewCommentService(comments, videos, new(repoMocks.MockLikeRepository))
			c, err := svc.Add(ctx, tt.videoID, owner, tt.content)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "nice video", c.Content)
			}
			comments.AssertExpectations(t)
			videos.AssertExpectations(t)
		})
	}
}

func TestCommentService_List(t *testing.T) {
	ctx := context.Background()
	videoID := primitive.NewObjectID()
	comments := new(repoMocks.MockCommentRepository)
	videos := new(repoMocks.MockVideoRepository)

	videos.On("Exists", ctx, videoID).Return(true, nil)
	comments.On("ListByVideo", ctx, videoID, repository.PageQuery{Limit: 10, Offset: 0}).
		Return(&repository.PageResult[model.CommentWithOwner]{Items: []model.CommentWithOwner{{Content: "a"}}, Total: 1}, nil)

	page, err := NewCommentService(comments, videos, nil).List(ctx, videoID.Hex(), PageRequest{})
	require.NoError(t, err)
	assert.Len(t, page.Docs, 1)
	assert.Equal(t, 1, page.TotalPages)
	comments.AssertExpectations(t)
}

func TestCommentService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	id := primitive.NewObjectID()
	existing := &model.Comment{ID: id, Owner: owner, Content: "old"}

	t.Run("update by owner", func(t *testing.T) {
		comments := new(repoMocks.MockCommentRepository)
		comments.On("FindByID", ctx, id).Return(existing, nil)
		comments.On("UpdateContent", ctx, id, "new").Return(nil)
		comments.On("FindWithOwner", ctx, id).Return(&model.CommentWithOwner{ID: id, Content: "new"}, nil)

		c, err := NewCommentService(comments, nil, nil).Update(ctx, id.Hex(), owner, "new")
		require.NoError(t, err)
		assert.Equal(t, "new", c.Content)
		comments.AssertExpectations(t)
	})

	t.Run("update by stranger", func(t *testing.T) {
		comments := new(repoMocks.MockCommentRepository)
		comments.On("FindByID", ctx, id).Return(existing, nil)

		_, err := NewCommentService(comments, nil, nil).Update(ctx, id.Hex(), stranger, "new")
		assert.ErrorIs(t, err, ErrForbidden)
		comments.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete removes likes", func(t *testing.T) {
		comments := new(repoMocks.MockCommentRepository)
		likes := new(repoMocks.MockLikeRepository)
		comments.On("FindByID", ctx, id).Return(existing, nil)
		comments.On("Delete", ctx, id).Return(nil)
		likes.On("DeleteByTargets", ctx, model.LikeTargetComment, []primitive.ObjectID{id}).Return(nil)

		err := NewCommentService(comments, nil, likes).Delete(ctx, id.Hex(), owner)
		require.NoError(t, err)
		comments.AssertExpectations(t)
		likes.AssertExpectations(t)
	})

	t.Run("delete missing", func(t *testing.T) {
		comments := new(repoMocks.MockCommentRepository)
		comments.On("FindByID", ctx, id).Return(nil, repository.ErrNotFound)

		err := NewCommentService(comments, nil, nil).Delete(ctx, id.Hex(), owner)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
