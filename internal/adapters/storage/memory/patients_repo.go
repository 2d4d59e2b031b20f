package memory

import (
	"context"
	"sort"
	"sync"

	"dental-clinical-records/internal/domain/patients"
)

type patientRepo struct {
	mu      sync.RWMutex
	byID    map[int64]patients.Patient
	byEmail map[string]int64
	nextID  int64
}

func NewPatientRepo() patients.Repository {
	return &patientRepo{
		byID:    make(map[int64]patients.Patient),
		byEmail: make(map[string]int64),
	}
}

func (r *patientRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Email != nil {
		if _, taken := r.byEmail[*p.Email]; taken {
			return patients.Patient{}, patients.ErrEmailTaken
		}
	}

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	if p.Email != nil {
		r.byEmail[*p.Email] = p.ID
	}
	return p, nil
}

func (r *patientRepo) GetByID(ctx context.Context, id int64) (patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return patients.Patient{}, patients.ErrNotFound
	}
	return p, nil
}

// exists lo usa treatmentRepo para simular la FK.
func (r *patientRepo) exists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

func (r *patientRepo) List(ctx context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]patients.Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Orden estable por id asc, igual que Postgres
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}
