package patient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) GetByRef(_ context.Context, ref string) (*Patient, error) {
	for _, p := range m.patients {
		if p.Ref == ref {
			return p, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) Upsert(_ context.Context, p *Patient) error {
	for _, stored := range m.patients {
		if stored.Ref == p.Ref {
			if p.Name != "" {
				stored.Name = p.Name
			}
			if p.Location != "" {
				stored.Location = p.Location
			}
			stored.UpdatedAt = time.Now()
			*p = *stored
			return nil
		}
	}
	return m.Create(context.Background(), p)
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

func newTestService() *Service {
	return NewService(newMockRepo())
}

func TestCreatePatient(t *testing.T) {
	svc := newTestService()
	p := &Patient{Ref: "bed-4", Name: "Jordan Reyes"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreatePatient_RefRequired(t *testing.T) {
	svc := newTestService()
	p := &Patient{Name: "Jordan Reyes"}
	if err := svc.CreatePatient(context.Background(), p); err == nil {
		t.Error("expected error for missing ref")
	}
}

func TestGetPatientByRef(t *testing.T) {
	svc := newTestService()
	p := &Patient{Ref: "bed-4", Name: "Jordan Reyes"}
	svc.CreatePatient(context.Background(), p)

	fetched, err := svc.GetPatientByRef(context.Background(), "bed-4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Name != "Jordan Reyes" {
		t.Errorf("expected name 'Jordan Reyes', got %s", fetched.Name)
	}
}

func TestGetPatientByRef_NotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.GetPatientByRef(context.Background(), "bed-99"); err == nil {
		t.Error("expected error for unknown ref")
	}
}

func TestUpsertPatient_FirstContact(t *testing.T) {
	svc := newTestService()
	p, err := svc.UpsertPatient(context.Background(), "bed-4", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
	if p.Ref != "bed-4" {
		t.Errorf("expected ref 'bed-4', got %s", p.Ref)
	}
}

func TestUpsertPatient_RefreshesMetadata(t *testing.T) {
	svc := newTestService()
	svc.UpsertPatient(context.Background(), "bed-4", "", "")

	p, err := svc.UpsertPatient(context.Background(), "bed-4", "Jordan Reyes", "ICU-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Jordan Reyes" || p.Location != "ICU-2" {
		t.Errorf("expected metadata to be filled in, got %q at %q", p.Name, p.Location)
	}
}

func TestUpsertPatient_EmptyInputKeepsStoredValues(t *testing.T) {
	svc := newTestService()
	svc.UpsertPatient(context.Background(), "bed-4", "Jordan Reyes", "ICU-2")

	p, err := svc.UpsertPatient(context.Background(), "bed-4", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Jordan Reyes" {
		t.Errorf("expected stored name to survive empty input, got %q", p.Name)
	}
	if p.Location != "ICU-2" {
		t.Errorf("expected stored location to survive empty input, got %q", p.Location)
	}
}

func TestUpsertPatient_RefRequired(t *testing.T) {
	svc := newTestService()
	if _, err := svc.UpsertPatient(context.Background(), "", "Jordan Reyes", ""); err == nil {
		t.Error("expected error for missing ref")
	}
}

func TestUpdatePatient_IDRequired(t *testing.T) {
	svc := newTestService()
	p := &Patient{Name: "Jordan Reyes"}
	if err := svc.UpdatePatient(context.Background(), p); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestDeletePatient(t *testing.T) {
	svc := newTestService()
	p := &Patient{Ref: "bed-4"}
	svc.CreatePatient(context.Background(), p)

	if err := svc.DeletePatient(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetPatient(context.Background(), p.ID); err == nil {
		t.Error("expected error after deletion")
	}
}

func TestListPatients(t *testing.T) {
	svc := newTestService()
	svc.CreatePatient(context.Background(), &Patient{Ref: "bed-1"})
	svc.CreatePatient(context.Background(), &Patient{Ref: "bed-2"})

	items, total, err := svc.ListPatients(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("expected 2 patients, got total=%d len=%d", total, len(items))
	}
}
