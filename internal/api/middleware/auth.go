package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastlegal/case-service/internal/api/metrics"
	"github.com/fastlegal/case-service/internal/core/ports"
)

// TokenHeader is the request-header slot carrying the raw session token.
// No "Bearer" prefix is expected.
const TokenHeader = "x-auth-token"

// ContextUserID is the echo context key the verified user id is stored under.
const ContextUserID = "user_id"

// Auth is the gate in front of every protected route. It verifies the token
// from the x-auth-token header and attaches the asserted user id to the
// request context. It never touches the stores.
func Auth(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
