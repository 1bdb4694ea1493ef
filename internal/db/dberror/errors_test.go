package dberror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFromPgError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrAlreadyExists},
		{"wrapped fk violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), ErrInvalidReference},
		{"other", errors.New("conn reset"), ErrDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromPgError(tt.err)
			assert.ErrorIs(t, err, tt.expected)
			assert.ErrorIs(t, err, tt.err)
		})
	}
	assert.NotErrorIs(t, FromPgError(errors.New("x")), ErrAlreadyExists)
}
