package routes

import (
	"karyawan/controllers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the panel. auth guards every route except the login
// and logout pages; loginLimiter runs before each login attempt.
func RegisterRoutes(app *fiber.App, h *controllers.Handler, auth, loginLimiter fiber.Handler) {

	// Login
	app.Get("/login", h.LoginPage)
	app.Post("/login", loginLimiter, h.Login)
	app.Get("/logout", h.Logout)

	// Dashboard
	app.Get("/", auth, h.Dashboard)

	// Karyawan
	emp := app.Group("/karyawan", auth)
	emp.Get("", h.GetEmployees)
	emp.Get("/tambah", h.NewEmployeeForm)
	emp.Post("/tambah", h.CreateEmployee)
	emp.Get("/edit/:id<int>", h.EditEmployeeForm)
	emp.Post("/edit/:id<int>", h.UpdateEmployee)
	emp.Get("/hapus/:id<int>", h.DeleteEmployee)
}
