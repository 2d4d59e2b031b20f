package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	notFound := NotFound("patient not found")

	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindNotFound, KindOf(notFound))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("lookup: %w", notFound)))
	assert.Equal(t, KindValidation, KindOf(Validation("name", "is required")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "name: is required", Validation("name", "is required").Error())
	assert.Equal(t, "email already registered", Conflict("email already registered").Error())
}

func TestPersistence_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("insert patient", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindPersistence, KindOf(err))
	assert.Equal(t, "insert patient: connection refused", err.Error())
}
