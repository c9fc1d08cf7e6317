package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/model"
	"vidtube/internal/service"
)

// ToggleLike godoc
// @Summary  Like or unlike a video, comment or tweet
// @Tags     likes
// @Produce  json
// @Param    videoId path string true "Target ID"
// @Success  200 {object} envelope "unliked"
// @Success  201 {object} envelope "liked"
// @Failure  404 {object} errorPayload
// @Router   /api/v1/likes/toggle/v/{videoId} [post]
func ToggleLike(svc service.LikeService, target model.LikeTarget, param string) fiber.Handler {
	noun := strings.ToUpper(string(target[:1])) + string(target[1:])
	return func(c *fiber.Ctx) error {
		liked, err := svc.Toggle(c.UserContext(), target, c.Params(param), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		if liked {
			return respond(c, fiber.StatusCreated, noun+" liked successfully", fiber.Map{"isLiked": true})
		}
		return respond(c, fiber.StatusOK, noun+" unliked successfully", fiber.Map{"isLiked": false})
	}
}

func LikedVideos(svc service.LikeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageRequest(c)
		if err != nil {
			return writePageError(c, err)
		}
		res, err := svc.LikedVideos(c.UserContext(), middleware.UserID(c), page)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Liked videos fetched successfully", res)
	}
}
