package followup

import (
	"context"
	"strings"

	"dental-clinical-records/internal/domain/patients"
	"dental-clinical-records/internal/domain/treatments"
)

type PatientSource interface {
	GetByID(ctx context.Context, id int64) (patients.Patient, error)
}

type TreatmentSource interface {
	Latest(ctx context.Context, patientID int64) (treatments.Treatment, bool, error)
}

// Service resuelve el paciente y delega en Composer / Generator.
// No escribe risk_level de vuelta: se calcula en cada request.
type Service struct {
	patients   PatientSource
	treatments TreatmentSource
	composer   *Composer
	generator  *Generator
}

func NewService(ps PatientSource, ts TreatmentSource, composer *Composer, generator *Generator) *Service {
	return &Service{
		patients:   ps,
		treatments: ts,
		composer:   composer,
		generator:  generator,
	}
}

func (s *Service) Reminder(ctx context.Context, patientID int64) (Reminder, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return Reminder{}, err
	}
	return s.composer.Compose(p)
}

func (s *Service) RiskAnalysis(ctx context.Context, patientID int64) (string, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return "", err
	}

	// Sin generador o sin visita no hace falta consultar tratamientos.
	if !s.generator.Enabled() || p.LastVisit == nil {
		return s.generator.Analyze(ctx, NarrativeInput{PatientID: p.ID, LastVisit: p.LastVisit})
	}

	tt, err := s.treatmentType(ctx, p)
	if err != nil {
		return "", err
	}
	return s.generator.Analyze(ctx, NarrativeInput{
		PatientID:     p.ID,
		LastVisit:     p.LastVisit,
		TreatmentType: tt,
	})
}

// treatmentType: treatment_status del paciente; si no tiene, el tipo del
// último tratamiento registrado; si tampoco, DefaultTreatmentType (lo aplica el Generator).
func (s *Service) treatmentType(ctx context.Context, p patients.Patient) (string, error) {
	if p.TreatmentStatus != nil {
		if status := strings.TrimSpace(*p.TreatmentStatus); status != "" {
			return status, nil
		}
	}
	if s.treatments != nil {
		t, ok, err := s.treatments.Latest(ctx, p.ID)
		if err != nil {
			return "", err
		}
		if ok {
			return t.TreatmentType, nil
		}
	}
	return "", nil
}
