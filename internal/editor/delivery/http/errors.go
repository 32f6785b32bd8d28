package http

import (
	"errors"
	"net/http"
	"strings"

	"insighthub/internal/catalog"
	"insighthub/internal/editor"
	pkgErrors "insighthub/pkg/errors"
)

// mapError translates editor errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, editor.ErrReadOnly):
		return pkgErrors.NewHTTPError(http.StatusForbidden, editor.ErrReadOnly.Error())
	case errors.Is(err, editor.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, editor.ErrValidation.Error()).
			WithDetails(missingFields(err))
	case errors.Is(err, catalog.ErrEntryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, catalog.ErrEntryNotFound.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// missingFields extracts the field list from "...: missing a, b".
func missingFields(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "missing ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
