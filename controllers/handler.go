// Package controllers holds the HTTP handlers of the panel.
package controllers

import (
	"karyawan/logging"
	"karyawan/middleware"
	"karyawan/repositories"
	"karyawan/utils"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	users     repositories.Users
	employees repositories.Employees
	tokens    *utils.TokenManager
	cookies   utils.Cookies
	log       logging.Logger
}

func NewHandler(users repositories.Users, employees repositories.Employees, tokens *utils.TokenManager, cookies utils.Cookies, log logging.Logger) *Handler {
	return &Handler{
		users:     users,
		employees: employees,
		tokens:    tokens,
		cookies:   cookies,
		log:       log,
	}
}

// render adds the pending flash (unless data already carries one) and the
// current user, then renders the named view inside the main layout.
func (h *Handler) render(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["Flash"]; !ok {
		if f := h.cookies.PopFlash(c); f != nil {
			data["Flash"] = f
		}
	}
	if user := middleware.CurrentUser(c); user != nil {
		data["User"] = user
	}
	return c.Status(status).Render(name, data)
}

func (h *Handler) redirectWithFlash(c *fiber.Ctx, to, category, message string) error {
	h.cookies.SetFlash(c, category, message)
	return c.Redirect(to)
}
