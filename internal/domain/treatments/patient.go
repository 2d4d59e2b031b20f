package treatments

import (
	"context"

	"dental-clinical-records/internal/domain/patients"
)

// PatientLookup es lo único que treatments necesita de patients.
// *patients.Service lo satisface.
type PatientLookup interface {
	GetByID(ctx context.Context, id int64) (patients.Patient, error)
}
