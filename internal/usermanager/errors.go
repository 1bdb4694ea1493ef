package usermanager

import (
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
)

var (
	ErrUserError    apperrors.Error = apperrors.New("error in processing user")
	ErrUserNotFound apperrors.Error = ErrUserError.New("user not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidUser  apperrors.Error = ErrUserError.New("invalid user").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrUserExists   apperrors.Error = ErrUserError.New("user already exists").SetStatusCode(http.StatusConflict)
	ErrUnauthorized apperrors.Error = ErrUserError.New("invalid access token").SetStatusCode(http.StatusUnauthorized)
	ErrUnableToSave apperrors.Error = ErrUserError.New("unable to save user")
	ErrUnableToLoad apperrors.Error = ErrUserError.New("unable to load user")
)
