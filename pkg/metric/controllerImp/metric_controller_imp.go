package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"tubeplan/entities"
	"tubeplan/pkg/apierr"
	repo "tubeplan/pkg/metric/repository"
	"tubeplan/pkg/metrics"
)

type MetricCtrl struct {
	repo repo.MetricRepository
	m    *metrics.Metrics
}

func New(r repo.MetricRepository, m *metrics.Metrics) *MetricCtrl { return &MetricCtrl{repo: r, m: m} }

// snapshotReq is an externally measured snapshot. Dates are YYYY-MM-DD; empty means today.
type snapshotReq struct {
	YouTubeVideoID    string         `json:"youtube_video_id" validate:"omitempty,max=64"`
	IdeaID            *uint          `json:"idea_id"`
	SnapshotDate      string         `json:"snapshot_date" validate:"omitempty,datetime=2006-01-02"`
	Impressions       *int64         `json:"impressions" validate:"omitempty,min=0"`
	CTR               *float64       `json:"ctr" validate:"omitempty,min=0,max=1"`
	Views             *int64         `json:"views" validate:"required,min=0"`
	AvgViewDuration   *float64       `json:"avg_view_duration" validate:"omitempty,min=0"`
	AvgViewPercentage *float64       `json:"avg_view_percentage" validate:"omitempty,min=0,max=1"`
	SubsGained        *int           `json:"subs_gained"`
	Notes             map[string]any `json:"notes"`
}

func (h *MetricCtrl) Create(c echo.Context) error {
	var req snapshotReq
	if err := c.Bind(&req); err != nil {
		return apierr.Write(c, apierr.Validation("bad json"))
	}
	if err := c.Validate(&req); err != nil {
		return apierr.Write(c, apierr.Validation("%v", err))
	}
	d := time.Now().UTC().Truncate(24 * time.Hour)
	if req.SnapshotDate != "" {
		dd, err := time.Parse("2006-01-02", req.SnapshotDate)
		if err != nil {
			return apierr.Write(c, apierr.Validation("snapshot_date must be YYYY-MM-DD"))
		}
		d = dd
	}
	m := &entities.MetricSnapshot{
		YouTubeVideoID:    req.YouTubeVideoID,
		IdeaID:            req.IdeaID,
		SnapshotDate:      d,
		Impressions:       req.Impressions,
		CTR:               req.CTR,
		Views:             *req.Views,
		AvgViewDuration:   req.AvgViewDuration,
		AvgViewPercentage: req.AvgViewPercentage,
		SubsGained:        req.SubsGained,
		Notes:             req.Notes,
	}
	if err := h.repo.Create(m); err != nil {
		return apierr.Write(c, err)
	}
	h.m.AddSnapshots(1)
	return c.JSON(http.StatusCreated, m)
}

func (h *MetricCtrl) List(c echo.Context) error {
	limit := 100
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
