package handler

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/service"
)

// ChannelStats godoc
// @Summary  Totals for the caller's channel
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} envelope
// @Failure  401 {object} errorPayload
// @Router   /api/v1/dashboard/stats [get]
func ChannelStats(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Channel stats fetched successfully", stats)
	}
}

func ChannelVideos(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageRequest(c)
		if err != nil {
			return writePageError(c, err)
		}
		res, err := svc.Videos(c.UserContext(), middleware.UserID(c), c.Query("sortBy"), c.Query("sortType"), page)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Channel videos fetched successfully", res)
	}
}
