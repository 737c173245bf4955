package screening

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type readingRepoPG struct{ pool *pgxpool.Pool }

func NewReadingRepoPG(pool *pgxpool.Pool) ReadingRepository { return &readingRepoPG{pool: pool} }

const readingCols = `id, patient_id, seq, taken_at, respiratory_rate, systolic_bp, mental_status,
	qsofa_score, qsofa_risk_label, qsofa_reasons, created_at`

func (r *readingRepoPG) scanReading(row pgx.Row) (*Reading, error) {
	var rd Reading
	err := row.Scan(&rd.ID, &rd.PatientID, &rd.Seq, &rd.TakenAt, &rd.RespiratoryRate, &rd.SystolicBP, &rd.MentalStatus,
		&rd.Score, &rd.RiskLabel, &rd.Reasons, &rd.CreatedAt)
	return &rd, err
}

func (r *readingRepoPG) Create(ctx context.Context, rd *Reading) error {
	rd.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO readings (id, patient_id, taken_at, respiratory_rate, systolic_bp, mental_status,
			qsofa_score, qsofa_risk_label, qsofa_reasons)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq, created_at`,
		rd.ID, rd.PatientID, rd.TakenAt, rd.RespiratoryRate, rd.SystolicBP, rd.MentalStatus,
		rd.Score, rd.RiskLabel, rd.Reasons).Scan(&rd.Seq, &rd.CreatedAt)
}

func (r *readingRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Reading, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+readingCols+` FROM readings WHERE patient_id = $1 ORDER BY taken_at ASC, seq ASC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Reading
	for rows.Next() {
		rd, err := r.scanReading(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rd)
	}
	return items, nil
}

func (r *readingRepoPG) ListByPatientPage(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Reading, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM readings WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+readingCols+` FROM readings WHERE patient_id = $1 ORDER BY taken_at ASC, seq ASC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Reading
	for rows.Next() {
		rd, err := r.scanReading(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rd)
	}
	return items, total, nil
}
