package finance

// Profitability flags shown on the office dashboard.
const (
	FlagOtimo     = "ótimo"
	FlagAtencao   = "atenção"
	FlagReajustar = "reajustar"
)

// Summary is the financial derivation for a project. It is recomputed on every
// read from the authoritative time-entry list and never persisted.
type Summary struct {
	HoursUsed         float64 `json:"hours_used"`
	HourlyYield       float64 `json:"hourly_yield"`
	TargetHourlyRate  float64 `json:"target_hourly_rate"`
	Variance          float64 `json:"variance"`
	ProfitabilityFlag string  `json:"profitability_flag"`
}

// Guards the division when no hours are logged yet: the yield reads as
// effectively unbounded and the project is flagged ótimo until hours arrive.
const epsilon = 1e-9

// Derive computes the realized hourly yield of a project and classifies it
// against the target rate: ótimo at or above target, atenção within 90% of it,
// reajustar below that.
func Derive(value, hoursUsed, hourlyRate float64) Summary {
	divisor := hoursUsed
	if divisor < epsilon {
		divisor = epsilon
	}
	yield := value / divisor

	flag := FlagReajustar
	switch {
	case yield >= hourlyRate:
		flag = FlagOtimo
	case yield >= 0.9*hourlyRate:
		flag = FlagAtencao
	}

	return Summary{
		HoursUsed:         hoursUsed,
		HourlyYield:       yield,
		TargetHourlyRate:  hourlyRate,
		Variance:          yield - hourlyRate,
		ProfitabilityFlag: flag,
	}
}
