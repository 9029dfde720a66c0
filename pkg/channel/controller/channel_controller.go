package controller

import "github.com/labstack/echo/v4"

type ChannelController interface {
	Get(c echo.Context) error
	Configure(c echo.Context) error
}
