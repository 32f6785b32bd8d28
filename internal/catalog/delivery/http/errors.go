package http

import (
	"errors"
	"net/http"

	"insighthub/internal/catalog"
	pkgErrors "insighthub/pkg/errors"
)

// mapError translates catalog errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrEntryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, catalog.ErrEntryNotFound.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
