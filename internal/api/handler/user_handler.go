package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/api/middleware"
	"github.com/memberhub/members-api/internal/core/domain"
)

// UserHandler serves the authenticated member endpoints. All routes sit
// behind RequireAuthenticated, so the resolved identity is always present;
// the nil checks exist only to keep the handlers total.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type pageResponse struct {
	Page string       `json:"page"`
	User *domain.User `json:"user,omitempty"`
}

// Dashboard returns the member landing payload.
//
// @Summary      Member dashboard
// @Tags         user
// @Produce      json
// @Success      200  {object}  pageResponse
// @Failure      401  {object}  errorResponse
// @Router       /dashboard [get]
func (h *UserHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "dashboard", User: middleware.CurrentUser(c)})
}

// Settings returns the account settings payload. Hidden from admins by the
// RequireNotAdmin guard.
//
// @Summary      Account settings
// @Tags         user
// @Produce      json
// @Success      200  {object}  pageResponse
// @Failure      401  {object}  errorResponse
// @Router       /settings [get]
func (h *UserHandler) Settings(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "settings", User: middleware.CurrentUser(c)})
}

// UpgradeAccount returns the upgrade information page for standard members.
//
// @Summary      Upgrade account info
// @Tags         user
// @Produce      json
// @Success      200  {object}  pageResponse
// @Failure      401  {object}  errorResponse
// @Router       /upgrade-account [get]
func (h *UserHandler) UpgradeAccount(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "upgrade-account"})
}
