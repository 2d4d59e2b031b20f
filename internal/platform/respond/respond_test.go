package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dental-clinical-records/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var env struct {
		Error ErrorBody `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Error
}

func TestError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperr.Validation("name", "is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeError(t, rec)
	assert.Equal(t, apperr.KindValidation, body.Kind)
	assert.Equal(t, "name", body.Field)
	assert.Equal(t, "is required", body.Message)
}

func TestError_HidesPersistenceDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperr.Persistence("insert patient", errors.New("pq: password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, apperr.KindPersistence, body.Kind)
	assert.Equal(t, "internal error", body.Message)
}

func TestError_PlainErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apperr.KindInternal, decodeError(t, rec).Kind)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(apperr.KindNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(apperr.KindConflict))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(apperr.KindInternal))
}
