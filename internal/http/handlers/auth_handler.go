package handlers

import (
	"time"

	applog "crestview/internal/log"
	"crestview/internal/services"
	"crestview/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func setSID(c *fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false, // set true behind HTTPS
	})
}

// AdminHome renders the dashboard when a live session exists, the
// login form otherwise. The admin route is the only place this fork
// happens.
func (h *AuthHandler) AdminHome(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		if a, err := h.Auth.CurrentAdmin(sid); err == nil && a != nil {
			return c.Redirect("/admin/dashboard")
		}
	}
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	return render(c, "admin_login", fiber.Map{"Err": "", "CSRFToken": tok})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("admin_login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}
	if pass == "" {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "empty_password"})
		return c.Status(401).Render("admin_login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	// A fresh sid is minted on every successful login; a sid the client
	// held before authenticating is never bound to the session.
	sid := uuid.NewString()
	a, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("admin_login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}
	setSID(c, sid)

	applog.Audit(c, "auth.login.success", map[string]any{"email": a.Email})
	return c.Redirect("/admin/dashboard")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid != "" {
		_ = h.Auth.Logout(sid)
	}
	// Expire cookie
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
