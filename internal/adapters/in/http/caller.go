package http

import (
	"github.com/labstack/echo/v4"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// Caller identity headers. Authentication is handled by the session
// layer in front of this service; it forwards the authenticated
// identity and role with every request.
const (
	headerCallerID   = "X-Caller-Id"
	headerCallerRole = "X-Caller-Role"
)

// callerFromRequest builds the acting caller from the identity headers.
func callerFromRequest(ctx echo.Context) (kernel.Caller, error) {
	rawID := ctx.Request().Header.Get(headerCallerID)
	if rawID == "" {
		return kernel.Caller{}, errs.NewValueIsRequiredError(headerCallerID)
	}
	rawRole := ctx.Request().Header.Get(headerCallerRole)
	if rawRole == "" {
		return kernel.Caller{}, errs.NewValueIsRequiredError(headerCallerRole)
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Caller{}, err
	}
	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return kernel.Caller{}, err
	}

	return kernel.NewCaller(id, role)
}
