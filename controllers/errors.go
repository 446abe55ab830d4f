package controllers

import (
	"errors"

	"karyawan/logging"
	"karyawan/middleware"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders the error page with the status carried by a
// *fiber.Error, or 500 for anything else.
func ErrorHandler(log logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		message := "Terjadi kesalahan pada server."
		switch code {
		case fiber.StatusNotFound:
			message = "Halaman tidak ditemukan."
		case fiber.StatusBadRequest:
			message = "Permintaan tidak valid."
		case fiber.StatusMethodNotAllowed:
			message = "Metode tidak diizinkan."
		}

		if code >= fiber.StatusInternalServerError {
			log.Error(c.UserContext(), "unhandled error", "path", c.Path(), "error", err)
		}

		data := fiber.Map{
			"Title":   message,
			"Code":    code,
			"Message": message,
		}
		if user := middleware.CurrentUser(c); user != nil {
			data["User"] = user
		}

		rerr := c.Status(code).Render("error", data)
		if rerr != nil {
			log.Error(c.UserContext(), "render error page", "error", rerr)
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
