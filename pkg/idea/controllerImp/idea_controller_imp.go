package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"tubeplan/pkg/apierr"
	"tubeplan/pkg/export"
	repo "tubeplan/pkg/idea/repository"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type IdeaCtrl struct{ repo repo.IdeaRepository }

func New(r repo.IdeaRepository) *IdeaCtrl { return &IdeaCtrl{r} }

type listReq struct {
	Status string `query:"status" validate:"omitempty,oneof=new queued"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

func (h *IdeaCtrl) bindList(c echo.Context, defLimit int) (listReq, error) {
	req := listReq{Limit: defLimit}
	if err := c.Bind(&req); err != nil {
		return req, apierr.Validation("bad query")
	}
	if err := c.Validate(&req); err != nil {
		return req, apierr.Validation("%v", err)
	}
	return req, nil
}

func (h *IdeaCtrl) List(c echo.Context) error {
	req, err := h.bindList(c, 100)
	if err != nil {
		return apierr.Write(c, err)
	}
	out, err := h.repo.List(req.Status, req.Limit)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IdeaCtrl) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return apierr.Write(c, apierr.Validation("invalid id"))
	}
	idea, err := h.repo.FindByID(uint(id))
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, idea)
}

// Export returns the whole backlog unless limit is given.
func (h *IdeaCtrl) Export(c echo.Context) error {
	req, err := h.bindList(c, 0)
	if err != nil {
		return apierr.Write(c, err)
	}
	ideas, err := h.repo.List(req.Status, req.Limit)
	if err != nil {
		return apierr.Write(c, err)
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, xlsxMIME)
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="backlog.xlsx"`)
	res.WriteHeader(http.StatusOK)
	return export.IdeasXLSX(res, ideas)
}
