package handler

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/service"
)

// ToggleSubscription answers 201 with the subscription on subscribe and
// 200 with null data on unsubscribe.
func ToggleSubscription(svc service.SubscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, subscribed, err := svc.Toggle(c.UserContext(), c.Params("channelId"), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		if subscribed {
			return respond(c, fiber.StatusCreated, "Subscribed successfully", sub)
		}
		return c.Status(fiber.StatusOK).JSON(envelope{
			StatusCode: fiber.StatusOK,
			Success:    true,
			Message:    "Unsubscribed successfully",
		})
	}
}

func ChannelSubscribers(svc service.SubscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageRequest(c)
		if err != nil {
			return writePageError(c, err)
		}
		res, err := svc.Subscribers(c.UserContext(), c.Params("channelId"), page)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Subscribers fetched successfully", res)
	}
}

func SubscribedChannels(svc service.SubscriptionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageRequest(c)
		if err != nil {
			return writePageError(c, err)
		}
		res, err := svc.SubscribedChannels(c.UserContext(), c.Params("subscriberId"), page)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Subscribed channels fetched successfully", res)
	}
}
