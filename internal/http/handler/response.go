package handler

import "github.com/gofiber/fiber/v2"

// envelope is the body of every successful response.
type envelope struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

func respond(c *fiber.Ctx, status int, message string, data any) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(status).JSON(envelope{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}
