package controllers

import "github.com/gofiber/fiber/v2"

func (h *Handler) Dashboard(c *fiber.Ctx) error {
	count, err := h.employees.Count(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, fiber.StatusOK, "dashboard", fiber.Map{
		"Title":         "Dashboard",
		"EmployeeCount": count,
	})
}
