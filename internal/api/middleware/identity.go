package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/memberhub/members-api/internal/api/metrics"
	"github.com/memberhub/members-api/internal/auth"
	"github.com/memberhub/members-api/internal/core/domain"
)

// identityKey is the context key the resolved identity is stored under.
// Handlers read it through CurrentUser only.
const identityKey = "resolved_identity"

// ResolveIdentity resolves the identity proof on every request before any
// guard runs. The contract is fail-open-to-anonymous: a missing, expired,
// malformed, or unknown proof degrades to the anonymous identity and never
// surfaces as an error to downstream handlers.
func ResolveIdentity(strategy auth.Strategy, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := strategy.Resolve(c)
			switch {
			case err != nil:
				log.Debug().Err(err).
					Str("strategy", strategy.Name()).
					Str("path", c.Path()).
					Msg("identity proof rejected, continuing as anonymous")
				metrics.IdentityResolutionsTotal.WithLabelValues("invalid", strategy.Name()).Inc()
			case user == nil:
				metrics.IdentityResolutionsTotal.WithLabelValues("anonymous", strategy.Name()).Inc()
			default:
				c.Set(identityKey, user)
				metrics.IdentityResolutionsTotal.WithLabelValues("authenticated", strategy.Name()).Inc()
			}
			return next(c)
		}
	}
}

// CurrentUser returns the resolved identity, or nil for anonymous requests.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}

// IsAuthenticated reports whether the request carries a resolved identity.
func IsAuthenticated(c echo.Context) bool {
	return CurrentUser(c) != nil
}
