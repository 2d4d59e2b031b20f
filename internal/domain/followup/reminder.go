package followup

import (
	"fmt"
	"strings"
	"time"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/platform/timestamp"
)

const (
	statusNotSpecified = "Not specified"
	recommendedAction  = "Schedule a follow-up appointment as soon as possible."
)

// Reminder es el recordatorio de seguimiento ya calculado.
type Reminder struct {
	PatientName       string
	LastVisit         string
	DaysSinceVisit    int
	RiskLevel         Tier
	TreatmentStatus   string
	RecommendedAction string
}

// Text arma el mensaje legible que se envía al paciente / recepción.
func (r Reminder) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Patient: %s\n", r.PatientName)
	fmt.Fprintf(&b, "Last Visit: %s\n", r.LastVisit)
	fmt.Fprintf(&b, "Days Since Visit: %d\n", r.DaysSinceVisit)
	fmt.Fprintf(&b, "Risk Level: %s\n", r.RiskLevel)
	fmt.Fprintf(&b, "Treatment Status: %s\n", r.TreatmentStatus)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Recommended Action: %s", r.RecommendedAction)
	return b.String()
}

type Composer struct {
	now func() time.Time
}

func NewComposer() *Composer {
	return &Composer{now: time.Now}
}

// Compose calcula días y tier a partir de last_visit. Sin last_visit devuelve
// ErrNoVisitData y no calcula nada.
func (c *Composer) Compose(p patients.Patient) (Reminder, error) {
	if p.LastVisit == nil || p.LastVisit.IsZero() {
		return Reminder{}, ErrNoVisitData
	}

	days := ElapsedDays(c.now(), *p.LastVisit)

	status := statusNotSpecified
	if p.TreatmentStatus != nil && strings.TrimSpace(*p.TreatmentStatus) != "" {
		status = *p.TreatmentStatus
	}

	return Reminder{
		PatientName:       p.Name,
		LastVisit:         timestamp.Format(*p.LastVisit),
		DaysSinceVisit:    days,
		RiskLevel:         Classify(days),
		TreatmentStatus:   status,
		RecommendedAction: recommendedAction,
	}, nil
}
