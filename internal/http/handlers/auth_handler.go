package handlers

import (
	"time"

	"solemart/internal/log"
	"solemart/internal/services"
	"solemart/internal/validate"

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
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	return render(c, "login", fiber.Map{"Err": "", "CSRFToken": tok})
}

// loginFailed logs the attempt and re-renders the form. The message never
// says which part was wrong.
func loginFailed(c *fiber.Ctx, email, reason string) error {
	fields := map[string]any{"email": email}
	if reason != "" {
		fields["reason"] = reason
	}
	log.Security(c, "auth.login.fail", fields)
	return c.Status(401).Render("login", fiber.Map{
		"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_"),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		return loginFailed(c, email, "bad_format")
	}
	if !validate.Password(pass) {
		return loginFailed(c, email, "bad_password_format")
	}
	if _, err := h.Auth.Login(sid, email, pass); err != nil {
		return loginFailed(c, email, "")
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/admin")
}

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
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/login")
}
