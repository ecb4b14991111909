package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/api/middleware"
	"github.com/memberhub/members-api/internal/core/domain"
	"github.com/memberhub/members-api/internal/core/ports"
)

// AdminHandler serves the admin area. Every route sits behind RequireAdmin.
type AdminHandler struct {
	adminService ports.AdminService
	audit        ports.AuditRecorder
}

func NewAdminHandler(adminService ports.AdminService, audit ports.AuditRecorder) *AdminHandler {
	return &AdminHandler{adminService: adminService, audit: audit}
}

type userListResponse struct {
	Users []domain.User `json:"users"`
}

// Dashboard returns the admin landing payload.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  pageResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "admin/dashboard", User: middleware.CurrentUser(c)})
}

// Users returns every account for the management table.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users})
}

// Promote grants admin to the user in the path and redirects back to the
// management list.
//
// @Summary      Promote a user to admin
// @Tags         admin
// @Success      302
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id}/promote [post]
func (h *AdminHandler) Promote(c echo.Context) error {
	id := c.Param("id")
	if err := h.adminService.PromoteUser(c.Request().Context(), id); err != nil {
		if err == domain.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}

	h.audit.Record(domain.AuthEvent{
		Username:  id,
		Action:    domain.ActionPromote,
		Outcome:   domain.OutcomeSuccess,
		Timestamp: time.Now().UTC(),
	})

	return c.Redirect(http.StatusFound, "/admin/users")
}
