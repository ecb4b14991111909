package middleware

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/core/domain"
)

// runGuard evaluates a guard against an optional resolved identity and
// reports (nextCalled, statusCode, redirectLocation).
func runGuard(t *testing.T, guard echo.MiddlewareFunc, user *domain.User) (bool, int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(identityKey, user)
	}

	called := false
	handler := guard(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return called, rec.Code, rec.Header().Get("Location")
}

func TestRequireAuthenticated(t *testing.T) {
	called, code, _ := runGuard(t, RequireAuthenticated(), &domain.User{ID: "u1"})
	if !called || code != http.StatusOK {
		t.Fatalf("expected identity admitted, called=%v code=%d", called, code)
	}

	called, code, _ = runGuard(t, RequireAuthenticated(), nil)
	if called {
		t.Fatalf("anonymous request reached the handler")
	}
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireAnonymous(t *testing.T) {
	called, code, _ := runGuard(t, RequireAnonymous(), nil)
	if !called || code != http.StatusOK {
		t.Fatalf("expected anonymous admitted, called=%v code=%d", called, code)
	}

	called, code, _ = runGuard(t, RequireAnonymous(), &domain.User{ID: "u1"})
	if called {
		t.Fatalf("authenticated request reached the anonymous-only handler")
	}
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestRequireAdmin(t *testing.T) {
	called, code, _ := runGuard(t, RequireAdmin(), &domain.User{ID: "u1", Admin: true})
	if !called || code != http.StatusOK {
		t.Fatalf("expected admin admitted, called=%v code=%d", called, code)
	}

	// Anonymous and standard identities receive the same forbidden signal.
	if called, code, _ = runGuard(t, RequireAdmin(), nil); called || code != http.StatusForbidden {
		t.Fatalf("anonymous: expected 403, called=%v code=%d", called, code)
	}
	if called, code, _ = runGuard(t, RequireAdmin(), &domain.User{ID: "u2"}); called || code != http.StatusForbidden {
		t.Fatalf("standard user: expected 403, called=%v code=%d", called, code)
	}
}

func TestRequireNotAdmin(t *testing.T) {
	if called, _, _ := runGuard(t, RequireNotAdmin(), nil); !called {
		t.Fatalf("anonymous must pass RequireNotAdmin")
	}
	if called, _, _ := runGuard(t, RequireNotAdmin(), &domain.User{ID: "u1"}); !called {
		t.Fatalf("standard user must pass RequireNotAdmin")
	}

	called, code, location := runGuard(t, RequireNotAdmin(), &domain.User{ID: "u2", Admin: true})
	if called {
		t.Fatalf("admin reached the member-only handler")
	}
	if code != http.StatusFound || location != AdminLandingPath {
		t.Fatalf("expected redirect to %s, got code=%d location=%s", AdminLandingPath, code, location)
	}
}

// TestRequireAdmin_Property checks the guard across randomly generated
// identity/role combinations: it must admit exactly the admin identities.
func TestRequireAdmin_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		var user *domain.User
		if rng.Intn(3) > 0 {
			user = &domain.User{
				ID:       fmt.Sprintf("u%d", i),
				Username: fmt.Sprintf("user%d", i),
				Admin:    rng.Intn(2) == 1,
			}
		}

		called, code, _ := runGuard(t, RequireAdmin(), user)
		wantAdmit := user != nil && user.Admin

		if called != wantAdmit {
			t.Fatalf("iteration %d: user=%+v admitted=%v, want %v", i, user, called, wantAdmit)
		}
		if !wantAdmit && code != http.StatusForbidden {
			t.Fatalf("iteration %d: expected 403, got %d", i, code)
		}
	}
}
