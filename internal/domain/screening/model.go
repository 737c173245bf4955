package screening

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitalwatch/vitalwatch/internal/domain/patient"
)

// Observation is one set of raw vital signs as submitted by a monitor or
// clinician.
type Observation struct {
	RespiratoryRate float64 `json:"respiratory_rate"`
	SystolicBP      float64 `json:"systolic_bp"`
	MentalStatus    string  `json:"mental_status"`
}

// ScoreResult is the outcome of scoring one observation. Score always
// equals the number of reasons.
type ScoreResult struct {
	Score     int      `json:"score"`
	RiskLabel string   `json:"risk_label"`
	Reasons   []string `json:"reasons"`
}

// Reading maps to the readings table. The qSOFA result is computed when the
// reading is stored and persisted alongside the raw vitals. Seq is the
// insertion counter that keeps readings with equal taken_at in submission
// order; it is internal and never serialized.
type Reading struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	Seq             int64     `db:"seq" json:"-"`
	TakenAt         time.Time `db:"taken_at" json:"taken_at"`
	RespiratoryRate float64   `db:"respiratory_rate" json:"respiratory_rate"`
	SystolicBP      float64   `db:"systolic_bp" json:"systolic_bp"`
	MentalStatus    string    `db:"mental_status" json:"mental_status"`
	Score           int       `db:"qsofa_score" json:"qsofa_score"`
	RiskLabel       string    `db:"qsofa_risk_label" json:"qsofa_risk_label"`
	Reasons         []string  `db:"qsofa_reasons" json:"qsofa_reasons"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ReadingInput carries one submitted reading. Pointer fields distinguish a
// missing key from a zero value so required-field validation can reject
// incomplete submissions; an empty mental status string is still accepted.
// The optional patient fields feed the upsert of display metadata.
type ReadingInput struct {
	TakenAt         *time.Time `json:"taken_at"`
	RespiratoryRate *float64   `json:"respiratory_rate"`
	SystolicBP      *float64   `json:"systolic_bp"`
	MentalStatus    *string    `json:"mental_status"`
	PatientName     string     `json:"patient_name"`
	PatientLocation string     `json:"patient_location"`
}

// Alert is one entry in the derived alert feed. Alerts are never stored;
// the feed is recomputed from the reading history on every read.
type Alert struct {
	Type        string    `json:"type"`
	Level       string    `json:"level"`
	Timestamp   time.Time `json:"timestamp"`
	Explanation string    `json:"explanation"`
}

// Summary is the combined view returned for one patient: identity, full
// reading history and the alert feed derived from it.
type Summary struct {
	Patient  *patient.Patient `json:"patient"`
	Readings []*Reading       `json:"readings"`
	Alerts   []Alert          `json:"alerts"`
	Stats    SummaryStats     `json:"summary"`
}

// SummaryStats condenses the latest reading for dashboard list views.
type SummaryStats struct {
	ReadingCount    int    `json:"reading_count"`
	LatestScore     *int   `json:"latest_score,omitempty"`
	LatestRiskLabel string `json:"latest_risk_label,omitempty"`
}

func buildSummary(p *patient.Patient, readings []*Reading, alerts []Alert) *Summary {
	if readings == nil {
		readings = make([]*Reading, 0)
	}
	s := &Summary{
		Patient:  p,
		Readings: readings,
		Alerts:   alerts,
		Stats:    SummaryStats{ReadingCount: len(readings)},
	}
	if len(readings) > 0 {
		last := readings[len(readings)-1]
		score := last.Score
		s.Stats.LatestScore = &score
		s.Stats.LatestRiskLabel = last.RiskLabel
	}
	return s
}
