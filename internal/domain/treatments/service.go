package treatments

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/platform/apperr"
	"dental-clinical-records/internal/platform/timestamp"
)

var (
	ErrNotFound        = apperr.NotFound("treatment not found")
	ErrPatientNotFound = apperr.NotFound("patient not found")
)

type Service struct {
	repo     Repository
	patients PatientLookup
	now      func() time.Time
}

func NewService(repo Repository, patients PatientLookup) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		now:      time.Now,
	}
}

type CreateInput struct {
	PatientID     int64
	TreatmentType string
	Date          *time.Time
	Status        *string
	Complications *string
	NextFollowUp  *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Treatment, error) {
	if in.PatientID <= 0 {
		return Treatment{}, apperr.Validation("patient_id", "is required")
	}
	tt := strings.TrimSpace(in.TreatmentType)
	if tt == "" {
		return Treatment{}, apperr.Validation("treatment_type", "is required")
	}
	if utf8.RuneCountInString(tt) > maxTreatmentTypeLen {
		return Treatment{}, apperr.Validation("treatment_type", "is too long")
	}
	if in.Date == nil || in.Date.IsZero() {
		return Treatment{}, apperr.Validation("date", "is required")
	}
	status := trimOptional(in.Status)
	if status != nil && utf8.RuneCountInString(*status) > maxStatusLen {
		return Treatment{}, apperr.Validation("status", "is too long")
	}

	if _, err := s.patients.GetByID(ctx, in.PatientID); err != nil {
		if errors.Is(err, patients.ErrNotFound) {
			return Treatment{}, ErrPatientNotFound
		}
		return Treatment{}, err
	}

	t := Treatment{
		PatientID:     in.PatientID,
		TreatmentType: tt,
		Date:          timestamp.Normalize(*in.Date),
		Status:        status,
		Complications: trimOptional(in.Complications),
		CreatedAt:     timestamp.Normalize(s.now()),
	}
	if in.NextFollowUp != nil {
		nf := timestamp.Normalize(*in.NextFollowUp)
		t.NextFollowUp = &nf
	}

	return s.repo.Create(ctx, t)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Treatment, error) {
	if id <= 0 {
		return Treatment{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]Treatment, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

// Latest devuelve el tratamiento más reciente del paciente; ok=false si no tiene.
func (s *Service) Latest(ctx context.Context, patientID int64) (Treatment, bool, error) {
	items, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return Treatment{}, false, err
	}
	if len(items) == 0 {
		return Treatment{}, false, nil
	}
	return items[0], true, nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
