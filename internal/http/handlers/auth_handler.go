package handlers

import (
	"time"

	applog "balcao/internal/log"
	"balcao/internal/services"
	"balcao/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// GET /
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	// Already logged in? straight to the room.
	if sid := c.Cookies("sid"); sid != "" {
		if u, err := h.Auth.CurrentUser(sid); err == nil && u != nil {
			return c.Redirect("/chat")
		}
	}
	return render(c, "login", fiber.Map{"Err": ""})
}

// POST /
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	username, okU := validate.Username(c.FormValue("username"))
	pass := c.FormValue("password")
	if !okU || !validate.Password(pass) {
		tok := c.Cookies("csrf_")
		applog.Security(c, "auth.login.fail", map[string]any{"username": username, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Usuário ou senha inválidos!", "CSRFToken": tok})
	}

	_, err := h.Auth.Login(sid, username, pass)
	if err != nil {
		tok := c.Cookies("csrf_")
		applog.Security(c, "auth.login.fail", map[string]any{"username": username})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Usuário ou senha inválidos!", "CSRFToken": tok})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"username": username})
	return c.Redirect("/chat")
}

// POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
