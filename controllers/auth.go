package controllers

import (
	"errors"

	"karyawan/common"
	"karyawan/models"
	"karyawan/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	msgLoginFailed = "Username atau password salah!"
	msgRateLimited = "Terlalu banyak percobaan login. Coba lagi nanti."
)

func (h *Handler) LoginPage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "login", fiber.Map{"Title": "Login", "Username": ""})
}

// Login verifies the submitted credentials. Unknown usernames and wrong
// passwords get the same response.
func (h *Handler) Login(c *fiber.Ctx) error {
	var in models.User_input
	if err := c.BodyParser(&in); err != nil {
		return h.loginFailed(c, in.Username)
	}

	user, err := h.users.GetByUsername(c.UserContext(), in.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return h.loginFailed(c, in.Username)
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, in.Password) {
		return h.loginFailed(c, in.Username)
	}

	token, err := h.tokens.GenerateJWTToken(user.ID)
	if err != nil {
		return err
	}
	h.cookies.SetJWTCookie(c, token, h.tokens.TTL())

	h.log.Info(c.UserContext(), "login succeeded", "user_id", user.ID)
	return c.Redirect("/")
}

func (h *Handler) loginFailed(c *fiber.Ctx, username string) error {
	h.log.Warn(c.UserContext(), "login failed", "username", username, "ip", c.IP())
	return h.render(c, fiber.StatusOK, "login", fiber.Map{
		"Title":    "Login",
		"Username": username,
		"Flash":    &utils.Flash{Category: "danger", Message: msgLoginFailed},
	})
}

// LoginRateLimited renders the login form when the limiter rejects an attempt.
func (h *Handler) LoginRateLimited(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusTooManyRequests, "login", fiber.Map{
		"Title":    "Login",
		"Username": "",
		"Flash":    &utils.Flash{Category: "danger", Message: msgRateLimited},
	})
}

// Logout always succeeds, with or without a session.
func (h *Handler) Logout(c *fiber.Ctx) error {
	h.cookies.ClearJWTCookie(c)
	return c.Redirect("/login")
}
