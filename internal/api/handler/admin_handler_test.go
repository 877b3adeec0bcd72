package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/complaintdesk/portal/internal/api/middleware"
	"github.com/complaintdesk/portal/internal/core/domain"
)

type stubAssignmentService struct {
	assignments []domain.Assignment
	engineers   []string
}

func (s *stubAssignmentService) Assign(_ context.Context, complaintID, engineerName string) (*domain.Assignment, error) {
	created := domain.Assignment{
		ID:           fmt.Sprintf("m%d", len(s.assignments)+1),
		ComplaintID:  complaintID,
		EngineerName: engineerName,
	}
	s.assignments = append(s.assignments, created)
	return &created, nil
}

func (s *stubAssignmentService) Engineers(context.Context) ([]string, error) {
	return s.engineers, nil
}

func (s *stubAssignmentService) History(_ context.Context, complaintID string) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range s.assignments {
		if a.ComplaintID == complaintID {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestDashboard_ReturnsComplaintsAndEngineers(t *testing.T) {
	complaints := &stubComplaintService{listed: []domain.Complaint{
		{ID: "c1", Description: "first"},
		{ID: "c2", Description: "second"},
	}}
	assignments := &stubAssignmentService{engineers: []string{"Jen", "Ken"}}
	h := NewAdminHandler(complaints, assignments)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.UserKey, &domain.User{ID: "u1", Name: "Admin", Role: domain.RoleAdmin})

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("dashboard error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Complaints []domain.Complaint `json:"complaints"`
		Engineers  []string           `json:"engineers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Complaints) != 2 || payload.Complaints[0].ID != "c1" {
		t.Fatalf("unexpected complaints: %+v", payload.Complaints)
	}
	if len(payload.Engineers) != 2 {
		t.Fatalf("unexpected engineers: %v", payload.Engineers)
	}
}

func TestComplaintDetail_ReturnsComplaintAndHistory(t *testing.T) {
	complaints := &stubComplaintService{listed: []domain.Complaint{
		{ID: "c1", Contact: "555-0100", Description: "lift is broken"},
	}}
	assignments := &stubAssignmentService{}
	h := NewAdminHandler(complaints, assignments)

	// Two assignments for the same complaint: both belong in the history.
	for _, engineer := range []string{"Jen", "Ken"} {
		if _, err := assignments.Assign(context.Background(), "c1", engineer); err != nil {
			t.Fatalf("seed assignment %s: %v", engineer, err)
		}
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/complaints/c1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.ComplaintDetail(c); err != nil {
		t.Fatalf("detail error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Complaint   domain.Complaint    `json:"complaint"`
		Assignments []domain.Assignment `json:"assignments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Complaint.ID != "c1" || payload.Complaint.Description != "lift is broken" {
		t.Fatalf("unexpected complaint: %+v", payload.Complaint)
	}
	if len(payload.Assignments) != 2 {
		t.Fatalf("expected 2 assignments in the history, got %d", len(payload.Assignments))
	}
	if payload.Assignments[0].EngineerName != "Jen" || payload.Assignments[1].EngineerName != "Ken" {
		t.Fatalf("unexpected history: %+v", payload.Assignments)
	}
}

func TestComplaintDetail_UnknownComplaint(t *testing.T) {
	h := NewAdminHandler(&stubComplaintService{}, &stubAssignmentService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/complaints/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := h.ComplaintDetail(c)
	if !errors.Is(err, domain.ErrComplaintNotFound) {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}
}

func TestAssign_Success(t *testing.T) {
	assignments := &stubAssignmentService{}
	h := NewAdminHandler(&stubComplaintService{}, assignments)

	c, rec := postForm(t, "/assign", url.Values{
		"complaintID":  {"c1"},
		"engineerName": {"Jen"},
	})
	if err := h.Assign(c); err != nil {
		t.Fatalf("assign error: %v", err)
	}
	if got := redirectTarget(t, rec); got != "/admin" {
		t.Fatalf("expected redirect to /admin, got %s", got)
	}
	if len(assignments.assignments) != 1 {
		t.Fatalf("expected one assignment, got %d", len(assignments.assignments))
	}
}

func TestAssign_SameComplaintTwiceKeepsBoth(t *testing.T) {
	assignments := &stubAssignmentService{}
	h := NewAdminHandler(&stubComplaintService{}, assignments)

	for _, engineer := range []string{"Jen", "Ken"} {
		c, rec := postForm(t, "/assign", url.Values{
			"complaintID":  {"c1"},
			"engineerName": {engineer},
		})
		if err := h.Assign(c); err != nil {
			t.Fatalf("assign %s: %v", engineer, err)
		}
		if got := redirectTarget(t, rec); got != "/admin" {
			t.Fatalf("assign %s: expected redirect to /admin, got %s", engineer, got)
		}
	}

	// The documented permissive behavior: both records exist.
	if len(assignments.assignments) != 2 {
		t.Fatalf("expected 2 assignment records, got %d", len(assignments.assignments))
	}
}

func TestAssign_MissingFields(t *testing.T) {
	cases := map[string]url.Values{
		"missing complaintID":  {"engineerName": {"Jen"}},
		"missing engineerName": {"complaintID": {"c1"}},
		"both missing":         {},
	}

	for name, form := range cases {
		assignments := &stubAssignmentService{}
		h := NewAdminHandler(&stubComplaintService{}, assignments)

		c, rec := postForm(t, "/assign", form)
		if err := h.Assign(c); err != nil {
			t.Fatalf("%s: assign error: %v", name, err)
		}
		if got := redirectTarget(t, rec); got != "/admin" {
			t.Fatalf("%s: expected redirect to /admin, got %s", name, got)
		}
		if len(assignments.assignments) != 0 {
			t.Fatalf("%s: no assignment should be created", name)
		}
	}
}
