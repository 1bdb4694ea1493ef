package dberror

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/mugiliam/fogcontroller/internal/apperrors"
)

var (
	ErrDatabase         apperrors.Error = apperrors.New("db error")
	ErrAlreadyExists    apperrors.Error = ErrDatabase.Msg("already exists")
	ErrNotFound         apperrors.Error = ErrDatabase.Msg("not found")
	ErrInvalidInput     apperrors.Error = ErrDatabase.Msg("invalid input")
	ErrInvalidReference apperrors.Error = ErrDatabase.Msg("invalid reference")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromPgError classifies a driver error by its PostgreSQL error code.
func FromPgError(err error) apperrors.Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrAlreadyExists.Err(err)
		case pgForeignKeyViolation:
			return ErrInvalidReference.Err(err)
		}
	}
	return ErrDatabase.Err(err)
}
