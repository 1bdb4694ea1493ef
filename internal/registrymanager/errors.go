package registrymanager

import (
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
)

var (
	ErrRegistryError    apperrors.Error = apperrors.New("error in processing registry")
	ErrRegistryNotFound apperrors.Error = ErrRegistryError.New("registry not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidRegistry  apperrors.Error = ErrRegistryError.New("invalid registry").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrBuiltinRegistry  apperrors.Error = ErrRegistryError.New("built-in registries cannot be modified").SetStatusCode(http.StatusBadRequest)
	ErrUnableToSave     apperrors.Error = ErrRegistryError.New("unable to save registry")
	ErrUnableToLoad     apperrors.Error = ErrRegistryError.New("unable to load registry")
)
