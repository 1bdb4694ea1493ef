package trackmanager

import (
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
)

var (
	ErrTrackError              apperrors.Error = apperrors.New("error in processing track")
	ErrTrackNotFound           apperrors.Error = ErrTrackError.New("track not found").SetStatusCode(http.StatusNotFound)
	ErrElementInstanceNotFound apperrors.Error = ErrTrackError.New("element instance not found").SetStatusCode(http.StatusNotFound)
	ErrPortNotFound            apperrors.Error = ErrTrackError.New("port mapping not found").SetStatusCode(http.StatusNotFound)
	ErrRouteNotFound           apperrors.Error = ErrTrackError.New("route not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidTrack            apperrors.Error = ErrTrackError.New("invalid track").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidElementInstance  apperrors.Error = ErrTrackError.New("invalid element instance").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidReference        apperrors.Error = ErrTrackError.New("referenced catalog item, track or fog does not exist").SetStatusCode(http.StatusBadRequest)
	ErrAlreadyExists           apperrors.Error = ErrTrackError.New("already exists").SetStatusCode(http.StatusConflict)
	ErrUserRequired            apperrors.Error = ErrTrackError.New("user is required").SetStatusCode(http.StatusUnauthorized)
	ErrUnableToSave            apperrors.Error = ErrTrackError.New("unable to save track")
	ErrUnableToLoad            apperrors.Error = ErrTrackError.New("unable to load track")
)
