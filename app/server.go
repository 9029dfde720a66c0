package app

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"tubeplan/pkg/middleware"
	"tubeplan/router"
)

// Echo returns the HTTP server with middleware and every route registered.
func (a *App) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = middleware.NewValidator()

	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(a.Log, a.Metrics))
	e.Use(middleware.APIKey(a.Cfg.APIKey, "/health", "/metrics"))
	if a.Cfg.APIKey == "" {
		a.Log.Warn("API_KEY not set, HTTP surface is unauthenticated")
	}

	return router.New(e, a.Controllers())
}
