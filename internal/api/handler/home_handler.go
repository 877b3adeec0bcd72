package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/complaintdesk/portal/internal/api/flash"
	"github.com/complaintdesk/portal/internal/api/middleware"
)

// HomeHandler serves the role landing payloads. Rendering is the view
// collaborator's job; these endpoints only hand it data.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home is the default landing page for authenticated users.
//
// @Summary      Home dashboard data
// @Tags         pages
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       / [get]
func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"user":    middleware.CurrentUser(c),
		"notices": flash.PopAll(c),
	})
}

// Junior is the junior-engineer landing page.
//
// @Summary      Junior engineer page data
// @Tags         pages
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /jeng [get]
func (h *HomeHandler) Junior(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"user":    middleware.CurrentUser(c),
		"notices": flash.PopAll(c),
	})
}
