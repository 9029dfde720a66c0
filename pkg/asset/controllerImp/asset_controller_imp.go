package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	repo "tubeplan/pkg/asset/repository"
	"tubeplan/pkg/apierr"
)

type AssetCtrl struct{ repo repo.AssetRepository }

func New(r repo.AssetRepository) *AssetCtrl { return &AssetCtrl{r} }

func (h *AssetCtrl) List(c echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 1000 {
			return apierr.Write(c, apierr.Validation("limit must be 1..1000"))
		}
		limit = n
	}
	out, err := h.repo.List(limit)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AssetCtrl) ByIdea(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return apierr.Write(c, apierr.Validation("invalid id"))
	}
	out, err := h.repo.ByIdea(uint(id))
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
