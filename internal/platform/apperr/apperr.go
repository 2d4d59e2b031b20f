package apperr

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores del dominio. Los handlers deciden el status HTTP
// a partir del Kind, nunca comparando mensajes.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindPersistence     Kind = "persistence"
	KindConfiguration   Kind = "configuration"
	KindMissingData     Kind = "missing_data"
	KindExternalService Kind = "external_service"
	KindInternal        Kind = "internal"
)

// Error es el error tipado que cruza las capas service -> handler.
// Field solo se usa en errores de validación.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Persistence envuelve un error del storage (conexión, constraint no mapeado, etc).
func Persistence(op string, err error) *Error {
	return &Error{Kind: KindPersistence, Msg: op + ": " + errString(err), Err: err}
}

// KindOf devuelve el Kind del primer *Error en la cadena.
// Cualquier otro error se considera interno.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
