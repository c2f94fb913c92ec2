package handlers

import (
	applog "solemart/internal/log"
	"solemart/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireStaff gates the back office: any logged-in staff account passes.
func RequireStaff(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		s, err := auth.Current(sid)
		if err != nil || s == nil {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Redirect("/login")
		}
		c.Locals("staff", s)
		c.Locals("staff_email", s.Email)
		return c.Next()
	}
}

// RequireAdmin additionally demands the ADMIN role (destructive screens).
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		s, err := auth.Current(sid)
		if err != nil || s == nil || s.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("staff", s)
		c.Locals("staff_email", s.Email)
		return c.Next()
	}
}
