package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/complaintdesk/portal/internal/core/domain"
	"github.com/complaintdesk/portal/internal/core/ports"
)

// ComplaintService persists submitted grievances. Field validation happens
// upstream in the handler; this layer stores whatever it is handed.
type ComplaintService struct {
	repo ports.ComplaintRepository
	log  zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, log zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, log: log}
}

func (s *ComplaintService) Submit(ctx context.Context, in ports.SubmitComplaintInput) (*domain.Complaint, error) {
	complaint := &domain.Complaint{
		Name:        in.Name,
		Email:       in.Email,
		Contact:     in.Contact,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, complaint)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store complaint")
		return nil, err
	}

	s.log.Info().Str("complaint_id", created.ID).Str("contact", created.Contact).Msg("complaint submitted")
	return created, nil
}

func (s *ComplaintService) Get(ctx context.Context, id string) (*domain.Complaint, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ComplaintService) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	return s.repo.ListAll(ctx)
}
