package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/complaintdesk/portal/internal/core/domain"
	"github.com/complaintdesk/portal/internal/core/ports"
)

type stubComplaintRepo struct {
	complaints []domain.Complaint
	failCreate error
}

func (r *stubComplaintRepo) Create(_ context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	if r.failCreate != nil {
		return nil, r.failCreate
	}
	created := *c
	created.ID = fmt.Sprintf("c%d", len(r.complaints)+1)
	r.complaints = append(r.complaints, created)
	return &created, nil
}

func (r *stubComplaintRepo) FindByID(_ context.Context, id string) (*domain.Complaint, error) {
	for _, c := range r.complaints {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrComplaintNotFound
}

func (r *stubComplaintRepo) ListAll(_ context.Context) ([]domain.Complaint, error) {
	out := make([]domain.Complaint, len(r.complaints))
	copy(out, r.complaints)
	return out, nil
}

func TestComplaintSubmit(t *testing.T) {
	repo := &stubComplaintRepo{}
	svc := NewComplaintService(repo, zerolog.Nop())

	created, err := svc.Submit(context.Background(), ports.SubmitComplaintInput{
		Name:        "A",
		Email:       "a@x.com",
		Contact:     "555-0100",
		Description: "lift is broken",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected an id")
	}
	if created.Contact != "555-0100" || created.Description != "lift is broken" {
		t.Fatalf("fields not persisted: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestComplaintSubmit_StorageFailure(t *testing.T) {
	repo := &stubComplaintRepo{failCreate: fmt.Errorf("connection reset")}
	svc := NewComplaintService(repo, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), ports.SubmitComplaintInput{Contact: "x", Description: "y"}); err == nil {
		t.Fatalf("expected storage error to propagate")
	}
	if len(repo.complaints) != 0 {
		t.Fatalf("no record should exist after failure")
	}
}

func TestComplaintGet(t *testing.T) {
	repo := &stubComplaintRepo{}
	svc := NewComplaintService(repo, zerolog.Nop())

	created, err := svc.Submit(context.Background(), ports.SubmitComplaintInput{Contact: "555-0100", Description: "leaky roof"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != created.ID || got.Description != "leaky roof" {
		t.Fatalf("unexpected complaint: %+v", got)
	}

	if _, err := svc.Get(context.Background(), "no-such-id"); err != domain.ErrComplaintNotFound {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}
}

func TestComplaintListAll_OrderPreserved(t *testing.T) {
	repo := &stubComplaintRepo{}
	svc := NewComplaintService(repo, zerolog.Nop())

	for _, desc := range []string{"first", "second", "third"} {
		if _, err := svc.Submit(context.Background(), ports.SubmitComplaintInput{Contact: "c", Description: desc}); err != nil {
			t.Fatalf("submit %s: %v", desc, err)
		}
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 complaints, got %d", len(all))
	}
	for i, want := range []string{"first", "second", "third"} {
		if all[i].Description != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, all[i].Description)
		}
	}
}
