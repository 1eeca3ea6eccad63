package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crestview/internal/repos"
)

func TestDashboardRequiresSession(t *testing.T) {
	app, _, _ := newApp(t)

	// anonymous -> bounced to the login page
	resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect for anonymous request, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
}

// A sid the server never issued resolves to nothing, no matter what
// other state the client claims to hold.
func TestForgedSessionGrantsNothing(t *testing.T) {
	app, _, _ := newApp(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-forged-by-client"})
	req.AddCookie(&http.Cookie{Name: "isAdminLoggedIn", Value: "true"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for forged session, got %d", resp.StatusCode)
	}
}

func TestExpiredSessionDoesNotResolve(t *testing.T) {
	app, db, _ := newApp(t)

	repo := repos.NewAdminRepo(db)
	if err := repo.BindSession("sid-expired", "adm-sales", -time.Hour); err != nil {
		t.Fatalf("bind session: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "sid-expired"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for expired session, got %d", resp.StatusCode)
	}
}

func TestBoundSessionReachesDashboard(t *testing.T) {
	app, db, _ := newApp(t)
	sid := adminSession(t, db)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(sid)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with bound session, got %d", resp.StatusCode)
	}
}
