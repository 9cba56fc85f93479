// Package http contains the Echo handlers for the journal API. Every route
// is scoped to the caller identified by the X-User-ID header; requests
// without it are rejected before reaching a service.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HeaderUserID identifies the calling user on every request.
const HeaderUserID = "X-User-ID"

// RequireUserID rejects requests that do not carry the user header.
func RequireUserID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(HeaderUserID) == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing " + HeaderUserID + " header"})
		}
		return next(c)
	}
}

func userID(c echo.Context) string {
	return c.Request().Header.Get(HeaderUserID)
}

// serviceError maps repository errors onto HTTP responses.
func serviceError(c echo.Context, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
