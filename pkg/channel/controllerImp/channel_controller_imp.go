package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tubeplan/pkg/apierr"
	"tubeplan/pkg/channel/service"
)

type ChannelCtrl struct{ s service.ChannelService }

func New(s service.ChannelService) *ChannelCtrl { return &ChannelCtrl{s: s} }

func (h *ChannelCtrl) Get(c echo.Context) error {
	ch, err := h.s.Get(c.Request().Context())
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, ch)
}

func (h *ChannelCtrl) Configure(c echo.Context) error {
	var req service.ChannelPatch
	if err := c.Bind(&req); err != nil {
		return apierr.Write(c, apierr.Validation("invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return apierr.Write(c, apierr.Validation("%v", err))
	}
	ch, err := h.s.Configure(c.Request().Context(), req)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, ch)
}
