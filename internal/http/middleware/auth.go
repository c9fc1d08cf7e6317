package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/service"
)

const (
	// UserIDLocalKey stores the authenticated user's ObjectID in Fiber locals.
	UserIDLocalKey = "user_id"
	// AccessTokenCookie is the cookie carrying the access token.
	AccessTokenCookie = "accessToken"
)

// Authenticator resolves an access token to a user ID.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (primitive.ObjectID, error)
}

// RequireAuth rejects requests without a valid access token with 401. The
// token is read from the accessToken cookie or an Authorization bearer header.
func RequireAuth(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := a.Authenticate(c.UserContext(), accessToken(c))
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				return fiber.NewError(fiber.StatusUnauthorized, err.Error())
			}
			c.Locals(ErrorLocalKey, err)
			return fiber.ErrInternalServerError
		}
		c.Locals(UserIDLocalKey, id)
		return c.Next()
	}
}

// UserID returns the caller set by RequireAuth, or the zero ID on public routes.
func UserID(c *fiber.Ctx) primitive.ObjectID {
	id, _ := c.Locals(UserIDLocalKey).(primitive.ObjectID)
	return id
}

func accessToken(c *fiber.Ctx) string {
	if tok := c.Cookies(AccessTokenCookie); tok != "" {
		return tok
	}
	h := c.Get(fiber.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
