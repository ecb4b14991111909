package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/memberhub/members-api/internal/core/domain"
)

type stubStrategy struct {
	user *domain.User
	err  error
}

func (s *stubStrategy) Name() string                                    { return "stub" }
func (s *stubStrategy) Issue(_ echo.Context, _ *domain.User) error      { return nil }
func (s *stubStrategy) Clear(_ echo.Context) error                      { return nil }
func (s *stubStrategy) Resolve(_ echo.Context) (*domain.User, error)    { return s.user, s.err }

func runResolve(t *testing.T, strategy *stubStrategy) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := ResolveIdentity(strategy, zerolog.Nop())
	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return c
}

func TestResolveIdentity_Authenticated(t *testing.T) {
	user := &domain.User{ID: "u1", Username: "alice", Admin: true}
	c := runResolve(t, &stubStrategy{user: user})

	resolved := CurrentUser(c)
	if resolved == nil || resolved.Username != "alice" {
		t.Fatalf("unexpected resolved identity: %+v", resolved)
	}
	if !IsAuthenticated(c) {
		t.Fatalf("IsAuthenticated = false for resolved identity")
	}
}

func TestResolveIdentity_Anonymous(t *testing.T) {
	c := runResolve(t, &stubStrategy{})

	if CurrentUser(c) != nil {
		t.Fatalf("expected anonymous identity")
	}
	if IsAuthenticated(c) {
		t.Fatalf("IsAuthenticated = true without identity")
	}
}

func TestResolveIdentity_InvalidProofDegradesToAnonymous(t *testing.T) {
	// A bad proof must never fail the request; it resolves to anonymous.
	c := runResolve(t, &stubStrategy{err: errors.New("token expired")})

	if CurrentUser(c) != nil {
		t.Fatalf("expected anonymous identity for invalid proof")
	}
}
