package treatments

import "context"

// Repository persiste tratamientos. Create asigna ID; si el paciente no existe
// (FK) debe devolver ErrPatientNotFound.
type Repository interface {
	Create(ctx context.Context, t Treatment) (Treatment, error)
	GetByID(ctx context.Context, id int64) (Treatment, error)
	// ListByPatient ordena por date desc (el más reciente primero).
	ListByPatient(ctx context.Context, patientID int64) ([]Treatment, error)
}
