package middleware

import (
	"errors"

	"karyawan/common"
	"karyawan/models"
	"karyawan/repositories"
	"karyawan/utils"

	"github.com/gofiber/fiber/v2"
)

const userKey = "user"

const loginRequiredMessage = "Silakan login untuk mengakses halaman ini."

// JWTMiddleware admits requests carrying a valid session cookie for a user
// that still exists and stores that user in Locals. Anyone else is sent to
// /login.
func JWTMiddleware(tokens *utils.TokenManager, users repositories.Users, cookies utils.Cookies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(utils.SessionCookieName)
		if raw == "" {
			return toLogin(c, cookies)
		}

		userID, err := tokens.ParseJWTToken(raw)
		if err != nil {
			cookies.ClearJWTCookie(c)
			return toLogin(c, cookies)
		}

		user, err := users.GetByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				cookies.ClearJWTCookie(c)
				return toLogin(c, cookies)
			}
			return err
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

func toLogin(c *fiber.Ctx, cookies utils.Cookies) error {
	cookies.SetFlash(c, "info", loginRequiredMessage)
	return c.Redirect("/login")
}

// CurrentUser returns the user admitted by JWTMiddleware, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
