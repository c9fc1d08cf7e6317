package handler

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/service"
)

func CreateTweet(svc service.TweetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body contentBody
		if err := parseBody(c, &body); err != nil {
			return writeBodyError(c)
		}
		t, err := svc.Create(c.UserContext(), middleware.UserID(c), body.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusCreated, "Tweet created successfully", t)
	}
}

func UserTweets(svc service.TweetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageRequest(c)
		if err != nil {
			return writePageError(c, err)
		}
		res, err := svc.ListByUser(c.UserContext(), c.Params("userId"), page)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Tweets fetched successfully", res)
	}
}

func UpdateTweet(svc service.TweetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body contentBody
		if err := parseBody(c, &body); err != nil {
			return writeBodyError(c)
		}
		t, err := svc.Update(c.UserContext(), c.Params("tweetId"), middleware.UserID(c), body.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Tweet updated successfully", t)
	}
}

func DeleteTweet(svc service.TweetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("tweetId"), middleware.UserID(c)); err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Tweet deleted successfully", nil)
	}
}
