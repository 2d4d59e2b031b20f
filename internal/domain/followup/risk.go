package followup

import "time"

// Tier es el nivel de riesgo de seguimiento según días desde la última visita.
type Tier string

const (
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

const (
	lowMaxDays    = 30
	mediumMaxDays = 90
)

// Classify: <=30 Low, 31..90 Medium, >90 High.
func Classify(days int) Tier {
	switch {
	case days <= lowMaxDays:
		return TierLow
	case days <= mediumMaxDays:
		return TierMedium
	default:
		return TierHigh
	}
}

// ElapsedDays cuenta días completos entre lastVisit y now (truncado).
// Una última visita en el futuro cuenta como 0 días.
func ElapsedDays(now, lastVisit time.Time) int {
	d := now.Sub(lastVisit)
	if d <= 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
