package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"crestview/internal/config"
	"crestview/internal/http/handlers"
	"crestview/internal/repos"
)

// newApp wires a full test app against an in-memory database, with the
// same route surface as main.
func newApp(t *testing.T) (*fiber.App, *sqlx.DB, *handlers.Deps) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{DBDSN: ":memory:", WhatsAppNumber: "+919876543210", SessionTTLHrs: 12}
	deps := handlers.NewDeps(db, cfg)

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if a, err := deps.Auth.CurrentAdmin(sid); err == nil && a != nil {
				c.Locals("admin", a)
				c.Locals("adminEmail", a.Email)
			}
		}
		return c.Next()
	})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	app.Get("/", deps.SiteHandler.Home)
	app.Get("/procurement", deps.BookingHandler.Procurement)
	app.Post("/bookings", deps.BookingHandler.Create)
	app.Get("/inventory", deps.InventoryHandler.Page)
	app.Get("/floorplans/:id", deps.FloorPlanHandler.Detail)
	app.Get("/api/v1/availability", deps.InventoryHandler.Availability)

	app.Get("/admin", deps.AuthHandler.AdminHome)
	app.Post("/admin/login", deps.AuthHandler.Login)
	app.Post("/admin/logout", deps.AuthHandler.Logout)

	admin := app.Group("/admin", handlers.RequireAdmin(deps.Auth))
	admin.Get("/dashboard", deps.AdminHandler.Dashboard)
	admin.Get("/bookings.csv", deps.AdminHandler.ExportCSV)
	admin.Post("/bookings/:id/status", deps.AdminHandler.UpdateBookingStatus)
	admin.Post("/bookings/:id/delete", deps.AdminHandler.DeleteBooking)
	admin.Post("/units", deps.UnitHandler.Create)
	admin.Post("/units/:id", deps.UnitHandler.Update)
	admin.Post("/units/:id/status", deps.UnitHandler.UpdateStatus)
	admin.Post("/units/:id/delete", deps.UnitHandler.Delete)

	return app, db, deps
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken primes the CSRF cookie by loading the admin login page.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

// postForm submits an urlencoded form with the csrf token and optional
// extra cookies.
func postForm(t *testing.T, app *fiber.App, path, tok string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	form.Set("csrf", tok)
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, int(5*time.Second/time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// adminSession binds a session to the seeded admin and returns the sid
// cookie to attach to privileged requests.
func adminSession(t *testing.T, db *sqlx.DB) *http.Cookie {
	t.Helper()
	repo := repos.NewAdminRepo(db)
	if err := repo.BindSession("sid-admin-test", "adm-sales", 12*time.Hour); err != nil {
		t.Fatalf("bind session: %v", err)
	}
	return &http.Cookie{Name: "sid", Value: "sid-admin-test"}
}
