package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChain(t *testing.T) {
	base := New("error in processing fog")
	notFound := base.New("fog not found").SetStatusCode(http.StatusNotFound)

	err := notFound.Msg("fog abc not found")
	assert.ErrorIs(t, err, notFound)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "fog abc not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
	assert.Equal(t, 0, base.StatusCode())
}

func TestErrWrapsCauses(t *testing.T) {
	cause := errors.New("connection refused")
	base := New("db error")

	err := base.Err(cause)
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "db error", err.Error())
	assert.Equal(t, "db error", err.ErrorAll())

	expanded := base.SetExpandError(true).MsgErr("invalid payload", cause)
	assert.Equal(t, "invalid payload: connection refused", expanded.ErrorAll())
}
