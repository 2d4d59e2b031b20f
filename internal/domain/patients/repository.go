package patients

import "context"

// Repository persiste pacientes. Create asigna ID y devuelve el registro guardado.
// Implementaciones deben devolver ErrNotFound y ErrEmailTaken (no errores propios).
type Repository interface {
	Create(ctx context.Context, p Patient) (Patient, error)
	GetByID(ctx context.Context, id int64) (Patient, error)
	List(ctx context.Context) ([]Patient, error)
}
