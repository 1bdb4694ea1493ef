package fogmanager

import (
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
)

var (
	ErrFogError            apperrors.Error = apperrors.New("error in processing fog")
	ErrFogNotFound         apperrors.Error = ErrFogError.New("fog not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidFog          apperrors.Error = ErrFogError.New("invalid fog").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidFogType      apperrors.Error = ErrFogError.New("invalid fog type").SetStatusCode(http.StatusBadRequest)
	ErrInvalidProvisionKey apperrors.Error = ErrFogError.New("invalid provisioning key").SetStatusCode(http.StatusBadRequest)
	ErrProvisionKeyExpired apperrors.Error = ErrInvalidProvisionKey.New("expired provisioning key").SetStatusCode(http.StatusBadRequest)
	ErrUnauthorized        apperrors.Error = ErrFogError.New("invalid fog id or token").SetStatusCode(http.StatusUnauthorized)
	ErrUserRequired        apperrors.Error = ErrFogError.New("user is required").SetStatusCode(http.StatusUnauthorized)
	ErrUnableToSave        apperrors.Error = ErrFogError.New("unable to save fog")
	ErrUnableToLoad        apperrors.Error = ErrFogError.New("unable to load fog")
)
