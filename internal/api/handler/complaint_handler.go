package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/complaintdesk/portal/internal/api/flash"
	"github.com/complaintdesk/portal/internal/api/metrics"
	"github.com/complaintdesk/portal/internal/api/middleware"
	"github.com/complaintdesk/portal/internal/core/ports"
)

// ComplaintHandler owns the complaint submission flow.
type ComplaintHandler struct {
	complaints ports.ComplaintService
}

func NewComplaintHandler(complaints ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

type complaintRequest struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Contact     string `form:"contact" validate:"required"`
	Description string `form:"desc" validate:"required"`
}

// Form returns the complaint form data, prefilled with the authenticated
// user's identity.
//
// @Summary      Complaint form data
// @Tags         complaints
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /complaint [get]
func (h *ComplaintHandler) Form(c echo.Context) error {
	payload := map[string]any{
		"notices": flash.PopAll(c),
	}
	if user := middleware.CurrentUser(c); user != nil {
		payload["name"] = user.Name
		payload["email"] = user.Email
	}
	return c.JSON(http.StatusOK, payload)
}

// Submit records a new complaint. Submission is open to anonymous callers;
// only contact and description are enforced non-empty.
//
// @Summary      Submit a complaint
// @Tags         complaints
// @Accept       x-www-form-urlencoded
// @Param        name     formData  string  false  "Submitter name"
// @Param        email    formData  string  false  "Submitter email"
// @Param        contact  formData  string  true   "Contact number"
// @Param        desc     formData  string  true   "Complaint description"
// @Success      303
// @Router       /registerComplaint [post]
func (h *ComplaintHandler) Submit(c echo.Context) error {
	var req complaintRequest
	if err := c.Bind(&req); err != nil {
		flash.Set(c, flash.Error, "invalid form submission")
		return c.Redirect(http.StatusSeeOther, "/complaint")
	}
	if err := c.Validate(&req); err != nil {
		flash.Set(c, flash.Error, err.Error())
		return c.Redirect(http.StatusSeeOther, "/complaint")
	}

	_, err := h.complaints.Submit(c.Request().Context(), ports.SubmitComplaintInput{
		Name:        req.Name,
		Email:       req.Email,
		Contact:     req.Contact,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ComplaintsSubmittedTotal.Inc()
	flash.Set(c, flash.Success, "You have successfully launched a complaint")
	return c.Redirect(http.StatusSeeOther, "/")
}
