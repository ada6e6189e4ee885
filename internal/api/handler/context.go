package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saasdash/dashboard-api/internal/api/middleware"
	"github.com/saasdash/dashboard-api/internal/core/domain"
)

// ctxIdentity extracts the identity the Auth middleware attached to the
// request. Its presence proves the middleware ran; a handler reached without
// it is a wiring bug and the request is rejected as unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
