package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/service"
)

const refreshTokenCookie = "refreshToken"

// CookieConfig controls the session cookies set on login and refresh.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (cc CookieConfig) set(c *fiber.Ctx, s *service.Session) {
	now := time.Now()
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    s.AccessToken,
		Path:     "/",
		Expires:  now.Add(cc.AccessTTL),
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     refreshTokenCookie,
		Value:    s.RefreshToken,
		Path:     "/",
		Expires:  now.Add(cc.RefreshTTL),
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (cc CookieConfig) clear(c *fiber.Ctx) {
	for _, name := range []string{middleware.AccessTokenCookie, refreshTokenCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   cc.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}

// RegisterUser godoc
// @Summary  Register a new user
// @Tags     users
// @Accept   multipart/form-data
// @Produce  json
// @Param    fullName   formData string true  "Full name"
// @Param    email      formData string true  "Email"
// @Param    username   formData string true  "Username"
// @Param    password   formData string true  "Password"
// @Param    avatar     formData file   true  "Avatar image"
// @Param    coverImage formData file   false "Cover image"
// @Success  201 {object} envelope
// @Failure  400 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Router   /api/v1/users/register [post]
func RegisterUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		avatar, closeAvatar, err := formFile(c, "avatar")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer closeAvatar()
		cover, closeCover, err := formFile(c, "coverImage")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer closeCover()

		u, err := svc.Register(c.UserContext(), service.RegisterInput{
			FullName:   c.FormValue("fullName"),
			Email:      c.FormValue("email"),
			Username:   c.FormValue("username"),
			Password:   c.FormValue("password"),
			Avatar:     avatar,
			CoverImage: cover,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusCreated, "User registered successfully", u)
	}
}

// LoginUser godoc
// @Summary  Log in with email or username
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body service.LoginInput true "Credentials"
// @Success  200 {object} envelope
// @Failure  401 {object} errorPayload
// @Router   /api/v1/users/login [post]
func LoginUser(svc service.UserService, cookies CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.LoginInput
		if err := parseBody(c, &in); err != nil {
			return writeBodyError(c)
		}
		s, err := svc.Login(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		cookies.set(c, s)
		return respond(c, fiber.StatusOK, "User logged in successfully", s)
	}
}

func LogoutUser(svc service.UserService, cookies CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Logout(c.UserContext(), middleware.UserID(c)); err != nil {
			return writeServiceError(c, err)
		}
		cookies.clear(c)
		return respond(c, fiber.StatusOK, "User logged out", nil)
	}
}

// RefreshToken accepts the refresh token from its cookie or a JSON body.
func RefreshToken(svc service.UserService, cookies CookieConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(refreshTokenCookie)
		if token == "" {
			var body struct {
				RefreshToken string `json:"refreshToken" form:"refreshToken"`
			}
			if err := parseBody(c, &body); err != nil {
				return writeBodyError(c)
			}
			token = body.RefreshToken
		}
		s, err := svc.Refresh(c.UserContext(), token)
		if err != nil {
			return writeServiceError(c, err)
		}
		cookies.set(c, s)
		return respond(c, fiber.StatusOK, "Access token refreshed", fiber.Map{
			"accessToken":  s.AccessToken,
			"refreshToken": s.RefreshToken,
		})
	}
}

func ChangePassword(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ChangePasswordInput
		if err := parseBody(c, &in); err != nil {
			return writeBodyError(c)
		}
		if err := svc.ChangePassword(c.UserContext(), middleware.UserID(c), in); err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Password changed successfully", nil)
	}
}

func CurrentUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.CurrentUser(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Current user fetched successfully", u)
	}
}

func UpdateAccount(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateAccountInput
		if err := parseBody(c, &in); err != nil {
			return writeBodyError(c)
		}
		u, err := svc.UpdateAccount(c.UserContext(), middleware.UserID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Account details updated successfully", u)
	}
}

// UpdateAvatar and UpdateCoverImage take a single multipart file.
func UpdateAvatar(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, closeFile, err := formFile(c, "avatar")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer closeFile()
		u, err := svc.UpdateAvatar(c.UserContext(), middleware.UserID(c), file)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Avatar image updated successfully", u)
	}
}

func UpdateCoverImage(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, closeFile, err := formFile(c, "coverImage")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer closeFile()
		u, err := svc.UpdateCoverImage(c.UserContext(), middleware.UserID(c), file)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Cover image updated successfully", u)
	}
}

// ChannelProfile godoc
// @Summary  Channel page for a username
// @Tags     users
// @Produce  json
// @Param    username path string true "Channel username"
// @Success  200 {object} envelope
// @Failure  404 {object} errorPayload
// @Router   /api/v1/users/c/{username} [get]
func ChannelProfile(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.ChannelProfile(c.UserContext(), c.Params("username"), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "User channel fetched successfully", p)
	}
}

func WatchHistory(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h, err := svc.WatchHistory(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Watch history fetched successfully", h)
	}
}
