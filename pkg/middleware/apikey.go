package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tubeplan/pkg/apierr"
)

const HeaderAPIKey = "X-API-Key"

var errUnauthorized = errors.New("missing or invalid API key")

// APIKey is optional. An empty key disables the check. Otherwise the request must carry
// the key in X-API-Key or as a Bearer token.
func APIKey(key string, skip ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return next(c)
			}
			for _, p := range skip {
				if c.Request().URL.Path == p {
					return next(c)
				}
			}
			got := c.Request().Header.Get(HeaderAPIKey)
			if got == "" {
				if auth := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
					got = strings.TrimPrefix(auth, "Bearer ")
				}
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return apierr.Write(c, apierr.New(http.StatusUnauthorized, "unauthorized", errUnauthorized))
			}
			return next(c)
		}
	}
}
