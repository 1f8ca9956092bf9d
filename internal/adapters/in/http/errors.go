package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain and upstream errors onto the uniform error body.
// Validation errors are the caller's fault (400), workflow guard violations
// are conflicts (409), unknown orders are 404, everything else, carrier
// upstream failures included, is a 500.
func writeError(ctx echo.Context, message string, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, commands.ErrOrderCancelled),
		errors.Is(err, commands.ErrOrderShippingCancelled),
		errors.Is(err, commands.ErrCarrierOrderExists):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	}

	return ctx.JSON(status, ErrorResponse{
		Error:   message,
		Details: err.Error(),
	})
}

func writeBadRequest(ctx echo.Context, message string, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   message,
		Details: err.Error(),
	})
}
