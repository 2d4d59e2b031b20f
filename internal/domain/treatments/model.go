package treatments

import "time"

// Treatment es un tratamiento realizado a un paciente. No existe sin su Patient.
type Treatment struct {
	ID        int64
	PatientID int64

	TreatmentType string
	Date          time.Time

	Status        *string
	Complications *string
	NextFollowUp  *time.Time

	CreatedAt time.Time
}

const (
	maxTreatmentTypeLen = 100
	maxStatusLen        = 50
)
