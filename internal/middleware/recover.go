package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"dental-clinical-records/internal/platform/respond"

	"github.com/rs/zerolog"
)

var errPanic = errors.New("panic recovered")

// Recover reemplaza chi/middleware.Recoverer para loguear con zerolog y
// responder con el mismo envelope de error que el resto de la API.
func Recover(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error().
					Str("request_id", GetRequestID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				respond.Error(w, errPanic)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
