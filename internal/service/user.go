package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"vidtube/internal/auth"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/internal/storage"
	"vidtube/internal/validation"
)

// TokenIssuer is the part of auth.TokenService the user service relies on.
type TokenIssuer interface {
	GenerateAccessToken(userID string) (string, error)
	VerifyAccessToken(token string) (string, error)
	GenerateRefreshToken() (string, time.Time, error)
}

var _ TokenIssuer = (*auth.TokenService)(nil)

type RegisterInput struct {
	FullName   string `json:"fullName" validate:"notblank,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Username   string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Password   string `json:"password" validate:"required,min=8,max=1024"`
	Avatar     *Upload `validate:"-"`
	CoverImage *Upload `validate:"-"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=1024"`
}

type UpdateAccountInput struct {
	FullName *string `json:"fullName" validate:"omitempty,notblank,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// Session is a logged in user together with a fresh token pair.
type Session struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// UserService covers accounts, sessions and channel pages.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, in LoginInput) (*Session, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	// Refresh rotates the token pair identified by refreshToken.
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	// Authenticate resolves an access token to the ID of an existing user.
	Authenticate(ctx context.Context, accessToken string) (primitive.ObjectID, error)

	ChangePassword(ctx context.Context, userID primitive.ObjectID, in ChangePasswordInput) error
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*model.User, error)
	UpdateAccount(ctx context.Context, userID primitive.ObjectID, in UpdateAccountInput) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID primitive.ObjectID, file *Upload) (*model.User, error)
	UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, file *Upload) (*model.User, error)

	ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*model.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]model.VideoWithOwner, error)
}

type userService struct {
	users    repository.UserRepository
	tokens   TokenIssuer
	media    *mediaStore
	validate *validation.Validator
}

// NewUserService constructs a UserService.
func NewUserService(users repository.UserRepository, tokens TokenIssuer, store storage.Storage, log *zap.Logger) UserService {
	return &userService{
		users:    users,
		tokens:   tokens,
		media:    &mediaStore{store: store, log: log},
		validate: validation.New(),
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	if err := s.validate.Validate(in); err != nil {
		return nil, fromValidation(err)
	}
	if in.Avatar == nil || in.Avatar.Reader == nil {
		return nil, invalid("avatar file is required")
	}

	taken, err := s.users.ExistsByEmailOrUsername(ctx, in.Email, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict("user with email or username already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	avatar, err := s.media.put(ctx, folderAvatars, "image", "avatar", in.Avatar)
	if err != nil {
		return nil, err
	}
	var cover string
	var coverKey string
	if in.CoverImage != nil && in.CoverImage.Reader != nil {
		info, err := s.media.put(ctx, folderCovers, "image", "coverImage", in.CoverImage)
		if err != nil {
			s.media.remove(ctx, avatar.Key)
			return nil, err
		}
		cover, coverKey = info.URL, info.Key
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &model.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Avatar:       avatar.URL,
		CoverImage:   cover,
		Password:     hash,
		WatchHistory: []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.media.remove(ctx, avatar.Key, coverKey)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("user with email or username already exists")
		}
		return nil, err
	}
	return created, nil
}

func (s *userService) Login(ctx context.Context, in LoginInput) (*Session, error) {
	if strings.TrimSpace(in.Email) == "" && strings.TrimSpace(in.Username) == "" {
		return nil, invalid("username or email is required")
	}
	if err := s.validate.Validate(in); err != nil {
		return nil, fromValidation(err)
	}

	u, err := s.users.FindByLogin(ctx, in.Email, in.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, unauthorized("invalid user credentials")
	}
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(u.Password, in.Password) {
		return nil, unauthorized("invalid user credentials")
	}
	return s.issueSession(ctx, u)
}

func (s *userService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	err := s.users.ClearRefreshToken(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, unauthorized("unauthorized request")
	}
	u, err := s.users.FindByRefreshTokenHash(ctx, auth.HashRefreshToken(refreshToken))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, unauthorized("invalid refresh token")
	}
	if err != nil {
		return nil, err
	}
	if u.RefreshTokenExpiresAt == nil || time.Now().After(*u.RefreshTokenExpiresAt) {
		return nil, unauthorized("refresh token is expired or used")
	}
	return s.issueSession(ctx, u)
}

// issueSession creates a token pair and stores the refresh token hash,
// replacing any earlier one.
func (s *userService) issueSession(ctx context.Context, u *model.User) (*Session, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID.Hex())
	if err != nil {
		return nil, err
	}
	refresh, expiresAt, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}
	if err := s.users.SetRefreshToken(ctx, u.ID, auth.HashRefreshToken(refresh), expiresAt); err != nil {
		return nil, err
	}
	return &Session{User: u, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) Authenticate(ctx context.Context, accessToken string) (primitive.ObjectID, error) {
	if accessToken == "" {
		return primitive.NilObjectID, unauthorized("unauthorized request")
	}
	sub, err := s.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return primitive.NilObjectID, unauthorized("invalid access token")
	}
	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return primitive.NilObjectID, unauthorized("invalid access token")
	}
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !ok {
		return primitive.NilObjectID, unauthorized("invalid access token")
	}
	return id, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID primitive.ObjectID, in ChangePasswordInput) error {
	if err := s.validate.Validate(in); err != nil {
		return fromValidation(err)
	}
	u, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(u.Password, in.OldPassword) {
		return invalid("invalid old password")
	}
	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

func (s *userService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*model.User, error) {
	return s.findUser(ctx, userID)
}

func (s *userService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, in UpdateAccountInput) (*model.User, error) {
	if in.FullName == nil && in.Email == nil {
		return nil, invalid("fullName or email is required")
	}
	if in.FullName != nil {
		v := strings.TrimSpace(*in.FullName)
		in.FullName = &v
	}
	if in.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &v
	}
	if err := s.validate.Validate(in); err != nil {
		return nil, fromValidation(err)
	}

	u, err := s.users.UpdateProfile(ctx, userID, repository.UserUpdate{FullName: in.FullName, Email: in.Email})
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, conflict("email is already in use")
	case errors.Is(err, repository.ErrNotFound):
		return nil, notFound("user not found")
	}
	return u, err
}

func (s *userService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, file *Upload) (*model.User, error) {
	info, err := s.media.put(ctx, folderAvatars, "image", "avatar", file)
	if err != nil {
		return nil, err
	}
	return s.updateImage(ctx, userID, repository.UserUpdate{Avatar: &info.URL}, info.Key)
}

func (s *userService) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, file *Upload) (*model.User, error) {
	info, err := s.media.put(ctx, folderCovers, "image", "coverImage", file)
	if err != nil {
		return nil, err
	}
	return s.updateImage(ctx, userID, repository.UserUpdate{CoverImage: &info.URL}, info.Key)
}

func (s *userService) updateImage(ctx context.Context, userID primitive.ObjectID, upd repository.UserUpdate, key string) (*model.User, error) {
	u, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		s.media.remove(ctx, key)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*model.ChannelProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, invalid("username is missing")
	}
	p, err := s.users.ChannelProfile(ctx, username, viewer)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("channel does not exist")
	}
	return p, err
}

func (s *userService) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]model.VideoWithOwner, error) {
	h, err := s.users.WatchHistory(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("user not found")
	}
	return h, err
}

func (s *userService) findUser(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("user not found")
	}
	return u, err
}
