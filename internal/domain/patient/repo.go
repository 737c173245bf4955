package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByRef(ctx context.Context, ref string) (*Patient, error)
	// Upsert inserts the patient keyed by ref, or refreshes its display
	// metadata on conflict. Empty name or location input never overwrites
	// a stored value. The stored row is read back into p.
	Upsert(ctx context.Context, p *Patient) error
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}
