package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tubeplan/entities"
	"tubeplan/pkg/apierr"
	repo "tubeplan/pkg/experiment/repository"
)

type ExperimentCtrl struct{ repo repo.ExperimentRepository }

func New(r repo.ExperimentRepository) *ExperimentCtrl { return &ExperimentCtrl{r} }

func (h *ExperimentCtrl) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && !validStatus(status) {
		return apierr.Write(c, apierr.Validation("unknown status %q", status))
	}
	out, err := h.repo.List(status)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type patchReq struct {
	Status  *string        `json:"status" validate:"omitempty,oneof=planned running done abandoned"`
	EndDate *string        `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Outcome map[string]any `json:"outcome"`
}

func (h *ExperimentCtrl) Patch(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return apierr.Write(c, apierr.Validation("invalid id"))
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return apierr.Write(c, apierr.Validation("bad json"))
	}
	if err := c.Validate(&req); err != nil {
		return apierr.Write(c, apierr.Validation("%v", err))
	}
	p := repo.ExperimentPatch{Status: req.Status, Outcome: req.Outcome}
	if req.EndDate != nil {
		d, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return apierr.Write(c, apierr.Validation("end_date must be YYYY-MM-DD"))
		}
		p.EndDate = &d
	}
	x, err := h.repo.Patch(uint(id), p)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusOK, x)
}

func validStatus(s string) bool {
	switch s {
	case entities.ExperimentStatusPlanned, entities.ExperimentStatusRunning,
		entities.ExperimentStatusDone, entities.ExperimentStatusAbandoned:
		return true
	}
	return false
}
