package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/errs"
)

// writeError maps application and domain errors to HTTP responses.
// Authorization failures deliberately answer with a generic message so
// the surface does not leak which checks exist.
func writeError(ctx echo.Context, err error) error {
	var (
		notFound     *errs.ObjectNotFoundError
		invalid      *errs.ValueIsInvalidError
		required     *errs.ValueIsRequiredError
		outOfRange   *errs.ValueIsOutOfRangeError
		unauthorized *errs.NotAuthorizedError
	)

	switch {
	case errors.As(err, &unauthorized):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "operation not permitted",
		})
	case errors.As(err, &notFound),
		errors.Is(err, commands.ErrShipmentNotFound),
		errors.Is(err, commands.ErrAgentNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, shipment.ErrAlreadyDelivered),
		errors.Is(err, payment.ErrPaymentNotPending):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &invalid),
		errors.As(err, &required),
		errors.As(err, &outOfRange),
		errors.Is(err, services.ErrPricingRuleNotFound):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// writeBadRequest answers a malformed request body or parameter.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
