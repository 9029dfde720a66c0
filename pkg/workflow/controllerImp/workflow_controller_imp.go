package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tubeplan/pkg/apierr"
	"tubeplan/pkg/workflow/service"
)

type WorkflowCtrl struct{ svc service.WorkflowService }

func New(svc service.WorkflowService) *WorkflowCtrl { return &WorkflowCtrl{svc: svc} }

type refreshReq struct {
	Count int `json:"count" validate:"min=1,max=500"`
}

type packageReq struct {
	Top int `json:"top" validate:"min=1,max=50"`
}

type ingestReq struct {
	Days int `json:"days" validate:"min=1,max=365"`
}

type weeklyReq struct {
	Count int `json:"count" validate:"min=1,max=500"`
	Top   int `json:"top" validate:"min=1,max=50"`
}

// bind fills req from an optional JSON body. Fields the body omits keep their defaults.
func bind(c echo.Context, req any) error {
	if c.Request().ContentLength != 0 {
		if err := c.Bind(req); err != nil {
			return apierr.Validation("invalid json")
		}
	}
	if err := c.Validate(req); err != nil {
		return apierr.Validation("%v", err)
	}
	return nil
}

func (h *WorkflowCtrl) Refresh(c echo.Context) error {
	req := refreshReq{Count: service.DefaultCount}
	if err := bind(c, &req); err != nil {
		return apierr.Write(c, err)
	}
	res, err := h.svc.Refresh(c.Request().Context(), req.Count)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *WorkflowCtrl) Package(c echo.Context) error {
	req := packageReq{Top: service.DefaultTop}
	if err := bind(c, &req); err != nil {
		return apierr.Write(c, err)
	}
	res, err := h.svc.Package(c.Request().Context(), req.Top)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *WorkflowCtrl) Ingest(c echo.Context) error {
	req := ingestReq{Days: service.DefaultDays}
	if err := bind(c, &req); err != nil {
		return apierr.Write(c, err)
	}
	res, err := h.svc.Ingest(c.Request().Context(), req.Days)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *WorkflowCtrl) Diagnose(c echo.Context) error {
	res, err := h.svc.Diagnose(c.Request().Context())
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *WorkflowCtrl) Weekly(c echo.Context) error {
	req := weeklyReq{Count: service.DefaultCount, Top: service.DefaultTop}
	if err := bind(c, &req); err != nil {
		return apierr.Write(c, err)
	}
	res, err := h.svc.Weekly(c.Request().Context(), req.Count, req.Top)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
