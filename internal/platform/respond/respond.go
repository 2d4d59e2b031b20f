// Package respond escribe respuestas JSON y el envelope de error de la API.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"dental-clinical-records/internal/platform/apperr"
)

// ErrorBody es el payload estructurado de error de la API.
type ErrorBody struct {
	Kind    apperr.Kind `json:"kind"`
	Message string      `json:"message"`
	Field   string      `json:"field,omitempty"`
}

type errorEnvelope struct {
	Error ErrorBody `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error traduce err a status + body según su Kind.
// Los errores sin Kind (o de persistencia) no exponen el detalle interno.
func Error(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	body := ErrorBody{Kind: kind, Message: "internal error"}

	var ae *apperr.Error
	if errors.As(err, &ae) && kind != apperr.KindPersistence && kind != apperr.KindInternal {
		body.Message = ae.Msg
		body.Field = ae.Field
	}
	if kind == apperr.KindInternal || kind == "" {
		body.Kind = apperr.KindInternal
	}

	JSON(w, StatusFor(kind), errorEnvelope{Error: body})
}

// Invalid responde 400 para errores de decodificación del request.
func Invalid(w http.ResponseWriter, field, msg string) {
	Error(w, apperr.Validation(field, msg))
}

func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindExternalService:
		return http.StatusBadGateway
	case apperr.KindConfiguration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
