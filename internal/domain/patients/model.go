package patients

import "time"

// Patient es la ficha clínica básica de un paciente de la clínica.
// Los campos opcionales son punteros: nil se expone como null en la API.
type Patient struct {
	ID int64

	Name  string
	Email *string
	Phone *string

	LastVisit *time.Time
	NextVisit *time.Time

	TreatmentStatus *string
	RiskLevel       *string // derivado; no se recalcula ni se escribe desde el dominio
	Notes           *string

	CreatedAt time.Time
}

// Mismos límites que las columnas VARCHAR de migrations/.
const (
	maxNameLen            = 100
	maxEmailLen           = 120
	maxPhoneLen           = 20
	maxTreatmentStatusLen = 50
)
