package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/api/metrics"
	"github.com/memberhub/members-api/internal/core/domain"
)

// Landing paths used by redirect-style guards and post-login routing.
const (
	AdminLandingPath  = "/admin/dashboard"
	MemberLandingPath = "/dashboard"
)

// RequireAuthenticated admits any resolved identity; anonymous requests are
// rejected with 401.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAuthenticated(c) {
				metrics.GuardRejectionsTotal.WithLabelValues("authenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrNotAuthenticated.Error())
			}
			return next(c)
		}
	}
}

// RequireAnonymous admits only requests with no resolved identity. Used on
// signup and login so an authenticated client cannot stack proofs.
func RequireAnonymous() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IsAuthenticated(c) {
				metrics.GuardRejectionsTotal.WithLabelValues("anonymous").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, domain.ErrAlreadyAuthenticated.Error())
			}
			return next(c)
		}
	}
}

// RequireAdmin admits only authenticated admins. Anonymous and non-admin
// identities both receive 403: insufficient privilege, not a login prompt.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || !user.Admin {
				metrics.GuardRejectionsTotal.WithLabelValues("admin").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}

// RequireNotAdmin hides member-only pages from admins by redirecting them
// to the admin landing. A routing convenience, not a security boundary:
// admins hold the superset of access anyway.
func RequireNotAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user := CurrentUser(c); user != nil && user.Admin {
				metrics.GuardRejectionsTotal.WithLabelValues("not_admin").Inc()
				return c.Redirect(http.StatusFound, AdminLandingPath)
			}
			return next(c)
		}
	}
}
