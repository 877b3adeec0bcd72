package ports

import (
	"context"

	"github.com/complaintdesk/portal/internal/core/domain"
)

// SubmitComplaintInput carries the complaint form fields. Field presence is
// enforced by the handler layer, not here.
type SubmitComplaintInput struct {
	Name        string
	Email       string
	Contact     string
	Description string
}

type ComplaintService interface {
	Submit(ctx context.Context, in SubmitComplaintInput) (*domain.Complaint, error)
	// Get returns domain.ErrComplaintNotFound for an unknown id.
	Get(ctx context.Context, id string) (*domain.Complaint, error)
	ListAll(ctx context.Context) ([]domain.Complaint, error)
}

// AssignmentService orchestrates the admin assignment flow.
type AssignmentService interface {
	// Assign always creates a new mapping record, even when the complaint
	// already has one.
	Assign(ctx context.Context, complaintID, engineerName string) (*domain.Assignment, error)
	// Engineers lists the names of junior-engineer users for the
	// assignment form.
	Engineers(ctx context.Context) ([]string, error)
	// History lists every assignment recorded for a complaint, oldest
	// first. A complaint can legitimately carry more than one.
	History(ctx context.Context, complaintID string) ([]domain.Assignment, error)
}
