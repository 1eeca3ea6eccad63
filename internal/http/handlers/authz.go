package handlers

import (
	applog "crestview/internal/log"
	"crestview/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin resolves the sid cookie to a live admin session on every
// privileged request. No persisted client-side flag is trusted.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/admin")
		}
		a, err := auth.CurrentAdmin(sid)
		if err != nil || a == nil {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("admin", a)
		c.Locals("adminEmail", a.Email)
		return c.Next()
	}
}
