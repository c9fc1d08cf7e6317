package handler

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/service"
)

type contentBody struct {
	Content string `json:"content" form:"content"`
}

func VideoComments(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageRequest(c)
		if err != nil {
			return writePageError(c, err)
		}
		res, err := svc.List(c.UserContext(), c.Params("videoId"), page)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Comments fetched successfully", res)
	}
}

func AddComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body contentBody
		if err := parseBody(c, &body); err != nil {
			return writeBodyError(c)
		}
		res, err := svc.Add(c.UserContext(), c.Params("videoId"), middleware.UserID(c), body.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusCreated, "Comment added successfully", res)
	}
}

func UpdateComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body contentBody
		if err := parseBody(c, &body); err != nil {
			return writeBodyError(c)
		}
		res, err := svc.Update(c.UserContext(), c.Params("commentId"), middleware.UserID(c), body.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Comment updated successfully", res)
	}
}

func DeleteComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("commentId"), middleware.UserID(c)); err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Comment deleted successfully", nil)
	}
}
