package screening

import "strings"

// qSOFA criterion thresholds.
const (
	RespRateThreshold   = 22.0
	SystolicBPThreshold = 100.0
)

// Reason strings attached to a score, one per met criterion.
const (
	ReasonRespRate     = "Respiratory rate at or above 22 breaths/min"
	ReasonSystolicBP   = "Systolic blood pressure at or below 100 mmHg"
	ReasonMentalStatus = "Altered mental status (not fully alert)"
)

// Risk labels by score band.
const (
	RiskLabelLow          = "Low screening score"
	RiskLabelIntermediate = "Intermediate screening score"
	RiskLabelHigh         = "High screening score"
)

// Score computes the qSOFA screening score for one set of vitals. Each met
// criterion adds one point and one reason, so the score always equals the
// number of reasons. An empty mental status means the observation was not
// recorded and contributes nothing.
func Score(obs Observation) ScoreResult {
	reasons := make([]string, 0, 3)
	if obs.RespiratoryRate >= RespRateThreshold {
		reasons = append(reasons, ReasonRespRate)
	}
	if obs.SystolicBP <= SystolicBPThreshold {
		reasons = append(reasons, ReasonSystolicBP)
	}
	if obs.MentalStatus != "" && !isAlertStatus(obs.MentalStatus) {
		reasons = append(reasons, ReasonMentalStatus)
	}
	return ScoreResult{
		Score:     len(reasons),
		RiskLabel: riskLabelFor(len(reasons)),
		Reasons:   reasons,
	}
}

func riskLabelFor(score int) string {
	switch {
	case score >= 2:
		return RiskLabelHigh
	case score == 1:
		return RiskLabelIntermediate
	default:
		return RiskLabelLow
	}
}

// Mental status values are free text from many device vendors, so the
// comparison against "alert" ignores case.
func isAlertStatus(s string) bool {
	return strings.EqualFold(s, "alert")
}
