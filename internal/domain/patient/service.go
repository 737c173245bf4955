package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Ref == "" {
		return fmt.Errorf("ref is required")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetPatientByRef(ctx context.Context, ref string) (*Patient, error) {
	if ref == "" {
		return nil, fmt.Errorf("ref is required")
	}
	return s.repo.GetByRef(ctx, ref)
}

// UpsertPatient registers a ref on first contact and refreshes display
// metadata on later submissions. Monitors often post readings before anyone
// has filled in the patient's name, so empty inputs leave stored values
// untouched.
func (s *Service) UpsertPatient(ctx context.Context, ref, name, location string) (*Patient, error) {
	if ref == "" {
		return nil, fmt.Errorf("ref is required")
	}
	p := &Patient{Ref: ref, Name: name, Location: location}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("id is required")
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}
