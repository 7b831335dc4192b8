package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastlegal/case-service/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. A missing id
// means a handler was wired without the gate; reject rather than proceed with
// an empty identity.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
