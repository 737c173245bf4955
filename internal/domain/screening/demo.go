package screening

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitalwatch/vitalwatch/internal/domain/patient"
)

// Demo patient shown by the demo endpoint and CLI command. Nothing here is
// persisted.
const (
	DemoPatientRef      = "demo"
	DemoPatientName     = "Demo Patient"
	DemoPatientLocation = "Simulation Ward"
)

const (
	demoReadingCount    = 4
	demoReadingInterval = 15 * time.Minute
)

// DemoReadings builds the canned deterioration scenario: four readings at
// 15 minute intervals with respiratory rate climbing, blood pressure
// falling and the patient ending up drowsy. Scores run 0, 0, 1, 3.
func DemoReadings(patientID uuid.UUID, start time.Time) []*Reading {
	readings := make([]*Reading, 0, demoReadingCount)
	for i := 0; i < demoReadingCount; i++ {
		obs := Observation{
			RespiratoryRate: float64(18 + 2*i),
			SystolicBP:      float64(115 - 5*i),
			MentalStatus:    "Alert",
		}
		if i == demoReadingCount-1 {
			obs.MentalStatus = "Drowsy"
		}
		res := Score(obs)
		takenAt := start.Add(time.Duration(i) * demoReadingInterval)
		readings = append(readings, &Reading{
			ID:              uuid.New(),
			PatientID:       patientID,
			Seq:             int64(i + 1),
			TakenAt:         takenAt,
			RespiratoryRate: obs.RespiratoryRate,
			SystolicBP:      obs.SystolicBP,
			MentalStatus:    obs.MentalStatus,
			Score:           res.Score,
			RiskLabel:       res.RiskLabel,
			Reasons:         res.Reasons,
			CreatedAt:       takenAt,
		})
	}
	return readings
}

// DemoSummary assembles the full demo response without touching storage.
// The scenario is anchored so its last reading lands at now.
func DemoSummary(now time.Time) *Summary {
	p := &patient.Patient{
		ID:        uuid.New(),
		Ref:       DemoPatientRef,
		Name:      DemoPatientName,
		Location:  DemoPatientLocation,
		CreatedAt: now,
		UpdatedAt: now,
	}
	start := now.Add(-demoReadingInterval * time.Duration(demoReadingCount-1))
	readings := DemoReadings(p.ID, start)
	return buildSummary(p, readings, AnalyzeTrend(readings))
}
