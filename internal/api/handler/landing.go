package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-api/internal/api/middleware"
)

// Landing is the public entry point. Anonymous and authenticated clients
// both see it; the payload includes the identity when one resolved.
//
// @Summary      Public landing
// @Tags         public
// @Produce      json
// @Success      200  {object}  pageResponse
// @Router       / [get]
func Landing(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "landing", User: middleware.CurrentUser(c)})
}
