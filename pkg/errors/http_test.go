package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "insighthub/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "taken"))

	he, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if he.StatusCode != http.StatusConflict || he.Message != "taken" {
		t.Errorf("got %+v", he)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error should not be an HTTPError")
	}
}

func TestWithDetails(t *testing.T) {
	base := pkgErrors.ErrBadRequest
	withDetails := base.WithDetails([]string{"title"})

	if base.Details != nil {
		t.Error("WithDetails must not modify the shared sentinel")
	}
	if withDetails.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", withDetails.StatusCode)
	}
	if got := withDetails.Error(); got != "400: bad request" {
		t.Errorf("Error() = %q", got)
	}
}
