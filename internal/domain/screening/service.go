package screening

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/vitalwatch/vitalwatch/internal/domain/patient"
)

// PatientDirectory is the slice of the patient domain the screening service
// needs. Ingest upserts display metadata; every read resolves the external
// ref first.
type PatientDirectory interface {
	UpsertPatient(ctx context.Context, ref, name, location string) (*patient.Patient, error)
	GetPatientByRef(ctx context.Context, ref string) (*patient.Patient, error)
}

// AlertCache holds serialized alert feeds keyed by a snapshot of the
// reading history. A backend failure must look like a miss; the feed is
// always recomputable.
type AlertCache interface {
	Get(ctx context.Context, patientID uuid.UUID, count int, lastSeq int64) ([]byte, bool)
	Set(ctx context.Context, patientID uuid.UUID, count int, lastSeq int64, payload []byte)
}

type Service struct {
	readings ReadingRepository
	patients PatientDirectory
	cache    AlertCache
}

func NewService(readings ReadingRepository, patients PatientDirectory) *Service {
	return &Service{readings: readings, patients: patients}
}

// SetAlertCache attaches an optional cache for derived alert feeds.
func (s *Service) SetAlertCache(cache AlertCache) {
	s.cache = cache
}

// IngestReading validates a submission, upserts the patient it references,
// scores the vitals and stores the reading with the result attached.
func (s *Service) IngestReading(ctx context.Context, patientRef string, in *ReadingInput) (*Reading, error) {
	if patientRef == "" {
		return nil, fmt.Errorf("patient ref is required")
	}
	if in.TakenAt == nil {
		return nil, fmt.Errorf("taken_at is required")
	}
	if in.RespiratoryRate == nil {
		return nil, fmt.Errorf("respiratory_rate is required")
	}
	if in.SystolicBP == nil {
		return nil, fmt.Errorf("systolic_bp is required")
	}
	if in.MentalStatus == nil {
		return nil, fmt.Errorf("mental_status is required")
	}

	p, err := s.patients.UpsertPatient(ctx, patientRef, in.PatientName, in.PatientLocation)
	if err != nil {
		return nil, fmt.Errorf("upsert patient %q: %w", patientRef, err)
	}

	res := Score(Observation{
		RespiratoryRate: *in.RespiratoryRate,
		SystolicBP:      *in.SystolicBP,
		MentalStatus:    *in.MentalStatus,
	})
	rd := &Reading{
		PatientID:       p.ID,
		TakenAt:         in.TakenAt.UTC(),
		RespiratoryRate: *in.RespiratoryRate,
		SystolicBP:      *in.SystolicBP,
		MentalStatus:    *in.MentalStatus,
		Score:           res.Score,
		RiskLabel:       res.RiskLabel,
		Reasons:         res.Reasons,
	}
	if err := s.readings.Create(ctx, rd); err != nil {
		return nil, err
	}
	return rd, nil
}

func (s *Service) GetPatientByRef(ctx context.Context, ref string) (*patient.Patient, error) {
	return s.patients.GetPatientByRef(ctx, ref)
}

func (s *Service) ListReadingsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Reading, int, error) {
	return s.readings.ListByPatientPage(ctx, patientID, limit, offset)
}

// AlertsForPatient derives the alert feed from the patient's full history,
// consulting the cache when one is attached.
func (s *Service) AlertsForPatient(ctx context.Context, patientID uuid.UUID) ([]Alert, error) {
	readings, err := s.readings.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return s.alertsFor(ctx, patientID, readings), nil
}

// SummarizePatient assembles the combined view for an already-resolved
// patient: full history, derived alerts and latest-reading stats.
func (s *Service) SummarizePatient(ctx context.Context, p *patient.Patient) (*Summary, error) {
	readings, err := s.readings.ListByPatient(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return buildSummary(p, readings, s.alertsFor(ctx, p.ID, readings)), nil
}

// alertsFor runs the trend analysis, going through the cache when possible.
// The cache key includes the history length and the last insertion counter,
// so any new reading changes the key and stale entries are never served.
func (s *Service) alertsFor(ctx context.Context, patientID uuid.UUID, readings []*Reading) []Alert {
	if s.cache == nil || len(readings) == 0 {
		return AnalyzeTrend(readings)
	}
	count, lastSeq := len(readings), readings[len(readings)-1].Seq
	if payload, ok := s.cache.Get(ctx, patientID, count, lastSeq); ok {
		var alerts []Alert
		if err := json.Unmarshal(payload, &alerts); err == nil {
			return alerts
		}
	}
	alerts := AnalyzeTrend(readings)
	if payload, err := json.Marshal(alerts); err == nil {
		s.cache.Set(ctx, patientID, count, lastSeq, payload)
	}
	return alerts
}
