package screening

import (
	"context"

	"github.com/google/uuid"
)

// ReadingRepository stores submitted readings. Readings are append-only;
// there is no update or delete.
type ReadingRepository interface {
	Create(ctx context.Context, rd *Reading) error
	// ListByPatient returns the patient's full history ordered oldest
	// first, with the insertion counter breaking taken_at ties.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Reading, error)
	ListByPatientPage(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Reading, int, error)
}
