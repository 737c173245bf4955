package screening

import "fmt"

// Alert severity levels.
const (
	AlertLevelWarning = "warning"
	AlertLevelHigh    = "high"
)

// Alert types, one per trend rule.
const (
	AlertTypeRiskEscalating  = "Risk escalating"
	AlertTypeHighRisk        = "High risk screening score"
	AlertTypeRespRateCrossed = "Respiratory rate threshold crossed"
	AlertTypeBPCrossed       = "Blood pressure threshold crossed"
	AlertTypeMentalStatus    = "Change in mental status"
)

const highRiskExplanation = "qSOFA screening score of 2 or higher indicates that at least two criteria are met among elevated respiratory rate, low systolic blood pressure and altered mental status."

// trendRule is one row of the rule table run over every adjacent pair of
// readings. Rules fire independently; a single pair can raise several
// alerts.
type trendRule struct {
	alertType string
	level     string
	matches   func(prev, curr *Reading) bool
	explain   func(prev, curr *Reading) string
}

// Rule order fixes alert order within a pair. The high score rule is a
// level check and re-fires for every qualifying pair; the threshold rules
// fire only on the transition.
var trendRules = []trendRule{
	{
		alertType: AlertTypeRiskEscalating,
		level:     AlertLevelWarning,
		matches: func(prev, curr *Reading) bool {
			return curr.Score > prev.Score
		},
		explain: func(prev, curr *Reading) string {
			return fmt.Sprintf("qSOFA screening score increased from %d to %d between readings.", prev.Score, curr.Score)
		},
	},
	{
		alertType: AlertTypeHighRisk,
		level:     AlertLevelHigh,
		matches: func(_, curr *Reading) bool {
			return curr.Score >= 2
		},
		explain: func(_, _ *Reading) string {
			return highRiskExplanation
		},
	},
	{
		alertType: AlertTypeRespRateCrossed,
		level:     AlertLevelWarning,
		matches: func(prev, curr *Reading) bool {
			return curr.RespiratoryRate >= RespRateThreshold && prev.RespiratoryRate < RespRateThreshold
		},
		explain: func(prev, curr *Reading) string {
			return fmt.Sprintf("Respiratory rate rose from %g to %g breaths/min, crossing the threshold of %g.", prev.RespiratoryRate, curr.RespiratoryRate, RespRateThreshold)
		},
	},
	{
		alertType: AlertTypeBPCrossed,
		level:     AlertLevelWarning,
		matches: func(prev, curr *Reading) bool {
			return curr.SystolicBP <= SystolicBPThreshold && prev.SystolicBP > SystolicBPThreshold
		},
		explain: func(prev, curr *Reading) string {
			return fmt.Sprintf("Systolic blood pressure fell from %g to %g mmHg, crossing the threshold of %g.", prev.SystolicBP, curr.SystolicBP, SystolicBPThreshold)
		},
	},
	{
		alertType: AlertTypeMentalStatus,
		level:     AlertLevelHigh,
		matches: func(prev, curr *Reading) bool {
			return isAlertStatus(prev.MentalStatus) && !isAlertStatus(curr.MentalStatus)
		},
		explain: func(prev, curr *Reading) string {
			return fmt.Sprintf("Mental status changed from %q to %q.", prev.MentalStatus, curr.MentalStatus)
		},
	},
}

// AnalyzeTrend derives the alert feed from a patient's reading history,
// which must be ordered oldest first. Every adjacent pair is checked
// against each rule in order, so the feed comes out chronological and,
// within a pair, in rule priority order. Each alert carries the timestamp
// of the newer reading of its pair. Fewer than two readings can never
// raise an alert.
func AnalyzeTrend(readings []*Reading) []Alert {
	alerts := make([]Alert, 0)
	for i := 1; i < len(readings); i++ {
		prev, curr := readings[i-1], readings[i]
		for _, rule := range trendRules {
			if !rule.matches(prev, curr) {
				continue
			}
			alerts = append(alerts, Alert{
				Type:        rule.alertType,
				Level:       rule.level,
				Timestamp:   curr.TakenAt,
				Explanation: rule.explain(prev, curr),
			})
		}
	}
	return alerts
}
