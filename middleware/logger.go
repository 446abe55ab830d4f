package middleware

import (
	"errors"
	"time"

	"karyawan/logging"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// RequestLogger logs one line per request. It expects requestid to run first.
func RequestLogger(log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		args := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.IP(),
		}
		if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			args = append(args, "request_id", id)
		}

		if status >= fiber.StatusInternalServerError {
			log.Error(c.UserContext(), "request failed", append(args, "error", err)...)
		} else {
			log.Info(c.UserContext(), "request", args...)
		}
		return err
	}
}
