package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/saasdash/dashboard-api/internal/api/metrics"
	"github.com/saasdash/dashboard-api/internal/core/domain"
	"github.com/saasdash/dashboard-api/internal/core/ports"
)

// identityKey is the echo context slot for the decoded token identity.
const identityKey = "auth.identity"

// Auth verifies the bearer access token and attaches the decoded identity to
// the request context. An absent or malformed Authorization header is 401;
// a token that fails verification is 403.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			identity, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}

// SetIdentity stores the identity in the context. Exported for tests and for
// the middleware itself; handlers only read.
func SetIdentity(c echo.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the identity attached by Auth, if any.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	if !ok || identity.UserID == "" {
		return domain.Identity{}, false
	}
	return identity, true
}
