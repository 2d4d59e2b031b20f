package followup

import (
	"errors"

	"dental-clinical-records/internal/platform/apperr"
)

var (
	// ErrNoVisitData: el paciente no tiene last_visit. No es una falla del sistema.
	ErrNoVisitData = &apperr.Error{Kind: apperr.KindMissingData, Msg: "No previous visit data available"}

	// ErrNarrativeDisabled: no hubo credencial al arrancar; el generador queda
	// deshabilitado para toda la vida del proceso.
	ErrNarrativeDisabled = &apperr.Error{
		Kind: apperr.KindConfiguration,
		Msg:  "AI risk analysis is not available: the text-generation service is not configured. Please check the LLM API key.",
	}
)

// IsOutcome indica si err es un resultado de seguimiento que se informa como
// texto (sin datos, deshabilitado, falla del servicio externo) y no como error HTTP.
func IsOutcome(err error) bool {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		return false
	}
	switch ae.Kind {
	case apperr.KindMissingData, apperr.KindConfiguration, apperr.KindExternalService:
		return true
	default:
		return false
	}
}
