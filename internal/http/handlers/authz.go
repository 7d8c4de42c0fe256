package handlers

import (
	applog "balcao/internal/log"
	"balcao/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates the admin panel: non-admins get a plain access
// denied response, not a redirect.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).SendString("Acesso negado!")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).SendString("Acesso negado!")
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireUser enforces that a user is logged in; otherwise redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/")
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
