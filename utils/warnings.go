package utils

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding the UI can show next to a recorded intake.
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
	ValueML  int             `json:"value_ml,omitempty"`
	LimitML  int             `json:"limit_ml,omitempty"`
}

const (
	// LargeSingleIntakeML flags a single drink big enough to be a typo or a
	// refill logged twice.
	LargeSingleIntakeML = 2000

	// ExcessiveDailyTotalML flags a daily total past common overhydration
	// guidance.
	ExcessiveDailyTotalML = 6000
)

// AssessIntake checks one record against the amount just logged and the daily
// total after it. Nil when there is nothing to flag.
func AssessIntake(amountML, dayTotalML int) []Warning {
	var ws []Warning
	if amountML > LargeSingleIntakeML {
		ws = append(ws, Warning{
			Code:     "large_single_intake",
			Severity: Caution,
			Message:  "That is a very large single intake; double-check the amount.",
			ValueML:  amountML,
			LimitML:  LargeSingleIntakeML,
		})
	}
	if dayTotalML > ExcessiveDailyTotalML {
		ws = append(ws, Warning{
			Code:     "daily_total_excessive",
			Severity: High,
			Message:  "Today's total is well past typical hydration guidance.",
			ValueML:  dayTotalML,
			LimitML:  ExcessiveDailyTotalML,
		})
	}
	return ws
}
