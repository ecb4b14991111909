package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/api/metrics"
	"github.com/memberhub/members-api/internal/api/middleware"
	"github.com/memberhub/members-api/internal/auth"
	"github.com/memberhub/members-api/internal/core/domain"
	"github.com/memberhub/members-api/internal/core/ports"
)

// AuthHandler handles signup, login, and logout. Proof issuance is
// delegated to the configured strategy; the handler only decides the
// post-issuance destination by role.
type AuthHandler struct {
	authService ports.AuthService
	strategy    auth.Strategy
	audit       ports.AuditRecorder
}

func NewAuthHandler(authService ports.AuthService, strategy auth.Strategy, audit ports.AuditRecorder) *AuthHandler {
	return &AuthHandler{authService: authService, strategy: strategy, audit: audit}
}

// Signup creates a new standard account and redirects to the login route.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      302
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /sign-up [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch err {
		case domain.ErrUserExists:
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		case domain.ErrInvalidCredentials:
			metrics.SignupsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	h.audit.Record(domain.AuthEvent{
		Username:  user.Username,
		Action:    domain.ActionSignup,
		Outcome:   domain.OutcomeSuccess,
		Timestamp: time.Now().UTC(),
	})

	return c.Redirect(http.StatusFound, "/log-in")
}

// Login verifies credentials, issues an identity proof, and redirects by
// role: admins to the admin landing, everyone else to the member landing.
// Failed verification never reveals whether the username exists; the
// client is redirected back to the login route with no proof set.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      302
// @Failure      400   {object}  errorResponse
// @Router       /log-in [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()
	user, err := h.authService.Verify(ctx, req.Username, req.Password)
	if err != nil {
		if verr, ok := err.(*domain.VerificationError); ok {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			h.audit.Record(domain.AuthEvent{
				Username:  req.Username,
				Action:    domain.ActionLogin,
				Outcome:   domain.OutcomeFailure,
				Detail:    verr.Reason,
				Timestamp: time.Now().UTC(),
			})
			return c.Redirect(http.StatusFound, "/log-in")
		}
		return err
	}

	if err := h.authService.RecordLogin(ctx, user.ID); err != nil {
		return err
	}
	if err := h.strategy.Issue(c, user); err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.audit.Record(domain.AuthEvent{
		Username:  user.Username,
		Action:    domain.ActionLogin,
		Outcome:   domain.OutcomeSuccess,
		Timestamp: time.Now().UTC(),
	})

	if user.Admin {
		return c.Redirect(http.StatusFound, middleware.AdminLandingPath)
	}
	return c.Redirect(http.StatusFound, middleware.MemberLandingPath)
}

// Logout invalidates the identity proof and redirects to the public
// landing. Safe to call without a proof; it is a no-op then.
//
// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /log-out [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.strategy.Clear(c); err != nil {
		return err
	}

	if user := middleware.CurrentUser(c); user != nil {
		h.audit.Record(domain.AuthEvent{
			Username:  user.Username,
			Action:    domain.ActionLogout,
			Outcome:   domain.OutcomeSuccess,
			Timestamp: time.Now().UTC(),
		})
	}

	return c.Redirect(http.StatusFound, "/")
}
