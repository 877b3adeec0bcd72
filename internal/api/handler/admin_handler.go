package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/complaintdesk/portal/internal/api/flash"
	"github.com/complaintdesk/portal/internal/api/metrics"
	"github.com/complaintdesk/portal/internal/api/middleware"
	"github.com/complaintdesk/portal/internal/core/ports"
)

// AdminHandler owns the admin dashboard and the assignment flow. Both
// routes sit behind the admin role gate.
type AdminHandler struct {
	complaints  ports.ComplaintService
	assignments ports.AssignmentService
}

func NewAdminHandler(complaints ports.ComplaintService, assignments ports.AssignmentService) *AdminHandler {
	return &AdminHandler{complaints: complaints, assignments: assignments}
}

type assignRequest struct {
	ComplaintID  string `form:"complaintID" validate:"required"`
	EngineerName string `form:"engineerName" validate:"required"`
}

// Dashboard returns the rendering data for the admin page: every complaint
// oldest-first plus the junior-engineer names for the assignment form.
//
// @Summary      Admin dashboard data
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /admin [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	complaints, err := h.complaints.ListAll(ctx)
	if err != nil {
		return err
	}
	engineers, err := h.assignments.Engineers(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"complaints": complaints,
		"engineers":  engineers,
		"user":       middleware.CurrentUser(c),
		"notices":    flash.PopAll(c),
	})
}

// ComplaintDetail returns one complaint together with its assignment
// history. The history can hold several records for the same complaint.
//
// @Summary      Complaint detail with assignment history
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Complaint id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /admin/complaints/{id} [get]
func (h *AdminHandler) ComplaintDetail(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	complaint, err := h.complaints.Get(ctx, id)
	if err != nil {
		return err
	}
	assignments, err := h.assignments.History(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"complaint":   complaint,
		"assignments": assignments,
	})
}

// Assign maps a complaint to an engineer. Assigning the same complaint
// twice creates a second record; the store enforces no uniqueness.
//
// @Summary      Assign a complaint to an engineer
// @Tags         admin
// @Accept       x-www-form-urlencoded
// @Param        complaintID   formData  string  true  "Complaint id"
// @Param        engineerName  formData  string  true  "Engineer name"
// @Success      303
// @Router       /assign [post]
func (h *AdminHandler) Assign(c echo.Context) error {
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		flash.Set(c, flash.Error, "invalid form submission")
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	if err := c.Validate(&req); err != nil {
		flash.Set(c, flash.Error, err.Error())
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	_, err := h.assignments.Assign(c.Request().Context(), req.ComplaintID, req.EngineerName)
	if err != nil {
		return err
	}

	metrics.AssignmentsCreatedTotal.Inc()
	flash.Set(c, flash.Success, "You have successfully assigned a complaint to engineer")
	return c.Redirect(http.StatusSeeOther, "/admin")
}
