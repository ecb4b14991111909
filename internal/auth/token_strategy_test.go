package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func issuedCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestTokenStrategy_IssueSetsCookie(t *testing.T) {
	strategy := NewTokenStrategy(NewTokenCodec("secret", time.Hour), true)
	c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/log-in", nil))

	if err := strategy.Issue(c, testUser()); err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	cookie := issuedCookie(t, rec, TokenCookieName)
	if !cookie.HttpOnly {
		t.Fatalf("token cookie must be HttpOnly")
	}
	if !cookie.Secure {
		t.Fatalf("expected Secure flag in production mode")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected SameSite=Lax, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != int(time.Hour.Seconds()) {
		t.Fatalf("expected Max-Age %d, got %d", int(time.Hour.Seconds()), cookie.MaxAge)
	}
}

func TestTokenStrategy_ResolveFromCookie(t *testing.T) {
	strategy := NewTokenStrategy(NewTokenCodec("secret", time.Hour), false)

	issueCtx, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/log-in", nil))
	if err := strategy.Issue(issueCtx, testUser()); err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(issuedCookie(t, rec, TokenCookieName))
	c, _ := newTestContext(req)

	user, err := strategy.Resolve(c)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected resolved user")
	}
	if user.ID != "64f0c2a1b2c3d4e5f6a7b8c9" || user.Username != "alice" || !user.Admin {
		t.Fatalf("unexpected resolved identity: %+v", user)
	}
}

func TestTokenStrategy_ResolveFromBearerHeader(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	strategy := NewTokenStrategy(codec, false)

	signed, err := codec.Sign(testUser())
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	c, _ := newTestContext(req)

	user, err := strategy.Resolve(c)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("unexpected resolved identity: %+v", user)
	}
}

func TestTokenStrategy_ResolveNoProof(t *testing.T) {
	strategy := NewTokenStrategy(NewTokenCodec("secret", time.Hour), false)
	c, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))

	user, err := strategy.Resolve(c)
	if err != nil {
		t.Fatalf("Resolve returned error for proofless request: %v", err)
	}
	if user != nil {
		t.Fatalf("expected anonymous, got %+v", user)
	}
}

func TestTokenStrategy_ResolveExpired(t *testing.T) {
	strategy := NewTokenStrategy(NewTokenCodec("secret", time.Nanosecond), false)

	issueCtx, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/log-in", nil))
	if err := strategy.Issue(issueCtx, testUser()); err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(issuedCookie(t, rec, TokenCookieName))
	c, _ := newTestContext(req)

	if _, err := strategy.Resolve(c); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestTokenStrategy_ClearExpiresCookie(t *testing.T) {
	strategy := NewTokenStrategy(NewTokenCodec("secret", time.Hour), false)
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/log-out", nil))

	if err := strategy.Clear(c); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	cookie := issuedCookie(t, rec, TokenCookieName)
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected expiring empty cookie, got value=%q maxage=%d", cookie.Value, cookie.MaxAge)
	}
}
