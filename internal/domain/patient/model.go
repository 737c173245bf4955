package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. Ref is the external identifier a
// monitor submits readings under, such as a bed label or an MRN. Display
// metadata is optional and may arrive later than the first reading.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Ref       string    `db:"ref" json:"ref"`
	Name      string    `db:"name" json:"name,omitempty"`
	Location  string    `db:"location" json:"location,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
