package controller

import "github.com/labstack/echo/v4"

type AssetController interface {
	List(c echo.Context) error
	ByIdea(c echo.Context) error
}
