package memory

import (
	"context"
	"sort"
	"sync"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/domain/treatments"
)

type treatmentRepo struct {
	mu       sync.RWMutex
	byID     map[int64]treatments.Treatment
	nextID   int64
	patients *patientRepo
}

// NewTreatmentRepo recibe el repo de pacientes para rechazar tratamientos
// huérfanos, como haría la FK en Postgres. repo debe venir de NewPatientRepo:
// con cualquier otro no hay forma de validar la FK y entra en pánico.
func NewTreatmentRepo(repo patients.Repository) treatments.Repository {
	pr, ok := repo.(*patientRepo)
	if !ok || pr == nil {
		panic("memory: NewTreatmentRepo requires a repository built by NewPatientRepo")
	}
	return &treatmentRepo{
		byID:     make(map[int64]treatments.Treatment),
		patients: pr,
	}
}

func (r *treatmentRepo) Create(ctx context.Context, t treatments.Treatment) (treatments.Treatment, error) {
	if !r.patients.exists(t.PatientID) {
		return treatments.Treatment{}, treatments.ErrPatientNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	r.byID[t.ID] = t
	return t, nil
}

func (r *treatmentRepo) GetByID(ctx context.Context, id int64) (treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return treatments.Treatment{}, treatments.ErrNotFound
	}
	return t, nil
}

func (r *treatmentRepo) ListByPatient(ctx context.Context, patientID int64) ([]treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]treatments.Treatment, 0)
	for _, t := range r.byID {
		if t.PatientID == patientID {
			out = append(out, t)
		}
	}

	// date desc; empate => id desc (el último cargado primero)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}
