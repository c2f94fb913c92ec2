package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"solemart/internal/config"
	"solemart/internal/http/handlers"
	"solemart/internal/repos"
)

// newTestApp wires the app the way main does, minus rate limiting.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	deps := handlers.NewDeps(db, config.Config{DBDSN: ":memory:"})
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if s, err := deps.Auth.Current(sid); err == nil && s != nil {
				c.Locals("staff", s)
				c.Locals("staff_email", s.Email)
			}
		}
		return c.Next()
	})
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)

	adm := app.Group("/admin", handlers.RequireStaff(deps.Auth))
	adm.Get("/", deps.AdminHandler.Dashboard)
	adm.Get("/:resource", deps.AdminHandler.List)
	adm.Get("/:resource/new", deps.AdminHandler.New)
	adm.Post("/:resource", deps.AdminHandler.Create)
	adm.Get("/:resource/:id/edit", deps.AdminHandler.Edit)
	adm.Post("/:resource/:id", deps.AdminHandler.Update)
	adm.Post("/:resource/:id/delete", deps.AdminHandler.Delete)

	return app, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

type session struct {
	SID  string
	CSRF string
}

// loginAdmin signs in the seeded admin account and returns its cookies.
func loginAdmin(t *testing.T, app *fiber.App) session {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}

	form := url.Values{
		"csrf":     {tok},
		"email":    {"admin@solemart.test"},
		"password": {"Passw0rd!"},
	}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login: want 302, got %d", resp.StatusCode)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("sid not set after login")
	}
	return session{SID: sid, CSRF: tok}
}

// postForm submits an authenticated admin form.
func postForm(t *testing.T, app *fiber.App, sess session, path string, fields url.Values) *http.Response {
	t.Helper()
	fields.Set("csrf", sess.CSRF)
	req := httptest.NewRequest("POST", path, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: sess.CSRF})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sess.SID})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, sess session, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: sess.CSRF})
	req.AddCookie(&http.Cookie{Name: "sid", Value: sess.SID})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}
