package timestamp

import (
	"strings"
	"time"

	"dental-clinical-records/internal/platform/apperr"
)

// Layout es el único formato textual de timestamps de la API (entrada y salida).
const Layout = time.RFC3339Nano

// Normalize deja el instante en UTC y con precisión de microsegundos, que es
// lo que guarda Postgres; así lo leído coincide con lo escrito.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func Format(t time.Time) string {
	return Normalize(t).Format(Layout)
}

// FormatPtr devuelve nil para timestamps ausentes (se serializa como null).
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

// Parse acepta solo la forma que produce Format: UTC con sufijo Z y hasta 6
// decimales sin ceros finales (2026-01-10T09:00:00Z, 2026-01-10T09:00:00.123456Z).
// Lo aceptado se lee de vuelta idéntico. nil o vacío => (nil, nil).
func Parse(field string, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(Layout, *s)
	if err != nil || Format(t) != *s {
		return nil, apperr.Validation(field, "must be a UTC RFC3339 timestamp such as 2026-01-10T09:00:00Z (at most 6 fractional digits, no trailing zeros)")
	}
	t = Normalize(t)
	return &t, nil
}
