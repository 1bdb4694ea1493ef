package catalogmanager

import (
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
)

var (
	ErrCatalogError        apperrors.Error = apperrors.New("error in processing catalog item")
	ErrCatalogItemNotFound apperrors.Error = ErrCatalogError.New("catalog item not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidCatalogItem  apperrors.Error = ErrCatalogError.New("invalid catalog item").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidRegistry     apperrors.Error = ErrCatalogError.New("registry not found").SetStatusCode(http.StatusBadRequest)
	ErrUserRequired        apperrors.Error = ErrCatalogError.New("user is required").SetStatusCode(http.StatusUnauthorized)
	ErrUnableToSave        apperrors.Error = ErrCatalogError.New("unable to save catalog item")
	ErrUnableToLoad        apperrors.Error = ErrCatalogError.New("unable to load catalog item")
)
