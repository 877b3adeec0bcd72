package ports

import (
	"context"

	"github.com/complaintdesk/portal/internal/core/domain"
)

// ComplaintRepository is a thin persistence boundary: it accepts whatever it
// is handed and performs no validation of its own.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) (*domain.Complaint, error)
	// FindByID returns domain.ErrComplaintNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.Complaint, error)
	// ListAll returns every complaint ordered by insertion, oldest first.
	ListAll(ctx context.Context) ([]domain.Complaint, error)
}

// AssignmentRepository persists complaint→engineer mappings. Inserts are
// unconditional: no uniqueness on complaint ID and no foreign-key check on
// the engineer name.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
	ListByComplaint(ctx context.Context, complaintID string) ([]domain.Assignment, error)
}
