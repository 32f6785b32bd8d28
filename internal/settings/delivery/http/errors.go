package http

import (
	"errors"
	"net/http"

	"insighthub/internal/settings"
	pkgErrors "insighthub/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, settings.ErrInvalidSettings):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
