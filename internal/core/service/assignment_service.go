package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/complaintdesk/portal/internal/core/domain"
	"github.com/complaintdesk/portal/internal/core/ports"
)

// AssignmentService creates complaint→engineer mappings. It deliberately
// performs no existence check on the complaint and no uniqueness check on
// prior assignments: two concurrent assigns for the same complaint both
// succeed and produce two records.
type AssignmentService struct {
	assignments ports.AssignmentRepository
	users       ports.UserRepository
	log         zerolog.Logger
}

func NewAssignmentService(assignments ports.AssignmentRepository, users ports.UserRepository, log zerolog.Logger) *AssignmentService {
	return &AssignmentService{assignments: assignments, users: users, log: log}
}

func (s *AssignmentService) Assign(ctx context.Context, complaintID, engineerName string) (*domain.Assignment, error) {
	assignment := &domain.Assignment{
		ComplaintID:  complaintID,
		EngineerName: engineerName,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.assignments.Create(ctx, assignment)
	if err != nil {
		s.log.Error().Err(err).Str("complaint_id", complaintID).Msg("failed to store assignment")
		return nil, err
	}

	s.log.Info().
		Str("complaint_id", created.ComplaintID).
		Str("engineer", created.EngineerName).
		Msg("complaint assigned")
	return created, nil
}

func (s *AssignmentService) Engineers(ctx context.Context) ([]string, error) {
	return s.users.ListNamesByRole(ctx, domain.RoleJeng)
}

func (s *AssignmentService) History(ctx context.Context, complaintID string) ([]domain.Assignment, error) {
	return s.assignments.ListByComplaint(ctx, complaintID)
}
