package followup

import (
	"context"
	"strings"
	"time"

	"dental-clinical-records/internal/platform/apperr"

	"github.com/rs/zerolog"
)

// TextGenerator es el servicio externo de generación de texto (LLM).
// Cada llamada es independiente; implementaciones deben ser seguras para uso concurrente.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NarrativeInput es lo que el generador necesita de un paciente.
type NarrativeInput struct {
	PatientID     int64
	LastVisit     *time.Time
	TreatmentType string
}

// Generator pide al LLM una evaluación de riesgo por falta de seguimiento y
// devuelve la respuesta tal cual. Sin TextGenerator queda deshabilitado.
type Generator struct {
	tg  TextGenerator
	log zerolog.Logger
	now func() time.Time
}

func NewGenerator(tg TextGenerator, log zerolog.Logger) *Generator {
	return &Generator{
		tg:  tg,
		log: log,
		now: time.Now,
	}
}

func (g *Generator) Enabled() bool {
	return g != nil && g.tg != nil
}

// Analyze hace como máximo una llamada al servicio externo, sin reintentos.
// Deshabilitado => ErrNarrativeDisabled; sin last_visit => ErrNoVisitData;
// falla del servicio => *apperr.Error KindExternalService con mensaje descriptivo.
func (g *Generator) Analyze(ctx context.Context, in NarrativeInput) (string, error) {
	if !g.Enabled() {
		return "", ErrNarrativeDisabled
	}
	if in.LastVisit == nil || in.LastVisit.IsZero() {
		return "", ErrNoVisitData
	}

	treatmentType := strings.TrimSpace(in.TreatmentType)
	if treatmentType == "" {
		treatmentType = DefaultTreatmentType
	}
	days := ElapsedDays(g.now(), *in.LastVisit)

	out, err := g.tg.Generate(ctx, BuildPrompt(treatmentType, days))
	if err != nil {
		g.log.Warn().
			Err(err).
			Int64("patient_id", in.PatientID).
			Msg("risk narrative generation failed")
		return "", &apperr.Error{
			Kind: apperr.KindExternalService,
			Msg:  "Error analyzing patient risk: " + err.Error(),
			Err:  err,
		}
	}
	return out, nil
}
