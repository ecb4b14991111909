package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/core/domain"
)

// Strategy names, also used as metric labels.
const (
	StrategyToken   = "token"
	StrategySession = "session"
)

// Strategy is the identity-proof mechanism. Exactly one implementation is
// wired per deployment; Issue delivers a proof to the client after a
// successful login, Resolve re-hydrates the identity from an inbound
// request, and Clear invalidates the proof on logout.
//
// Resolve returns (nil, nil) when the request carries no proof at all, and
// (nil, err) for a proof that is present but unusable. Callers degrade both
// to the anonymous identity.
type Strategy interface {
	Name() string
	Issue(c echo.Context, user *domain.User) error
	Resolve(c echo.Context) (*domain.User, error)
	Clear(c echo.Context) error
}

// proofCookie builds the Set-Cookie carrying an identity proof. HttpOnly
// keeps it away from client script; Secure is set only in production so
// local development over plain HTTP still works.
func proofCookie(name, value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// expireCookie overwrites the named cookie with an immediately expiring one.
func expireCookie(name string, secure bool) *http.Cookie {
	return proofCookie(name, "", -1, secure)
}
