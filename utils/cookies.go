package utils

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookieName = "session"
	FlashCookieName   = "flash"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// Cookies writes the panel's cookies with consistent attributes.
type Cookies struct {
	Secure bool
}

func (k Cookies) base(name, value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   k.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

func (k Cookies) clear(c *fiber.Ctx, name string) {
	cookie := k.base(name, "")
	cookie.Expires = time.Now().Add(-time.Hour)
	c.Cookie(cookie)
}

// SetJWTCookie stores the session token. A zero ttl makes it a browser-session cookie.
func (k Cookies) SetJWTCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	cookie := k.base(SessionCookieName, token)
	if ttl > 0 {
		cookie.Expires = time.Now().Add(ttl)
	} else {
		cookie.SessionOnly = true
	}
	c.Cookie(cookie)
}

func (k Cookies) ClearJWTCookie(c *fiber.Ctx) {
	k.clear(c, SessionCookieName)
}

func (k Cookies) SetFlash(c *fiber.Ctx, category, message string) {
	value := url.QueryEscape(category) + "|" + url.QueryEscape(message)
	cookie := k.base(FlashCookieName, value)
	cookie.SessionOnly = true
	c.Cookie(cookie)
}

// PopFlash returns the pending flash, if any, and clears it.
func (k Cookies) PopFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(FlashCookieName)
	if raw == "" {
		return nil
	}
	k.clear(c, FlashCookieName)

	category, message, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	category, err1 := url.QueryUnescape(category)
	message, err2 := url.QueryUnescape(message)
	if err1 != nil || err2 != nil || message == "" {
		return nil
	}
	return &Flash{Category: category, Message: message}
}
