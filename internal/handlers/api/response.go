package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

// envelope is the shape of every JSON response.
type envelope struct {
	Status    string `json:"status"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(envelope{
		Status:    "ok",
		Data:      data,
		RequestID: requestid.FromContext(c),
	})
}

// jsonError reports message with status. The request id lets a failed call
// be matched with the access log.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{
		Status:    "error",
		Error:     message,
		RequestID: requestid.FromContext(c),
	})
}
