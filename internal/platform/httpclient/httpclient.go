package httpclient

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultTimeout = 30 * time.Second
)

// New crea un *http.Client con timeout. Es el único lugar donde se fija el
// timeout de las llamadas salientes (el dominio no impone ninguno).
func New(timeout time.Duration) *http.Client {
	return NewWithTransport(timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}

// LoggingTransport registra host, status y latencia de cada request saliente.
// Nunca loguea headers (llevan la API key).
type LoggingTransport struct {
	Next http.RoundTripper
	Log  zerolog.Logger
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}

	start := time.Now()
	resp, err := next.RoundTrip(req)

	evt := t.Log.Debug()
	if err != nil {
		evt = t.Log.Warn().Err(err)
	} else if resp.StatusCode >= 400 {
		evt = t.Log.Warn().Int("status", resp.StatusCode)
	} else {
		evt = evt.Int("status", resp.StatusCode)
	}
	evt.
		Str("method", req.Method).
		Str("host", req.URL.Host).
		Dur("latency", time.Since(start)).
		Msg("upstream request")

	return resp, err
}
