package controller

import "github.com/labstack/echo/v4"

type WorkflowController interface {
	Refresh(c echo.Context) error
	Package(c echo.Context) error
	Ingest(c echo.Context) error
	Diagnose(c echo.Context) error
	Weekly(c echo.Context) error
}
