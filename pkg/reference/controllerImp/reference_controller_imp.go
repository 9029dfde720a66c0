package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"tubeplan/pkg/apierr"
	"tubeplan/pkg/reference/service"
)

type ReferenceCtrl struct{ s service.ReferenceService }

func New(s service.ReferenceService) *ReferenceCtrl { return &ReferenceCtrl{s: s} }

type ingestReq struct {
	Title     string `json:"title" validate:"required,max=300"`
	Tags      string `json:"tags" validate:"max=500"`
	Text      string `json:"text" validate:"required"`
	SourceURL string `json:"source_url" validate:"omitempty,url"`
}

type ingestURLReq struct {
	URL   string `json:"url" validate:"required,url"`
	Title string `json:"title" validate:"max=300"`
	Tags  string `json:"tags" validate:"max=500"`
}

func (h *ReferenceCtrl) IngestText(c echo.Context) error {
	var req ingestReq
	if err := c.Bind(&req); err != nil {
		return apierr.Write(c, apierr.Validation("invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return apierr.Write(c, apierr.Validation("%v", err))
	}
	doc, n, err := h.s.Ingest(req.Title, req.Tags, req.Text, req.SourceURL)
	if err != nil {
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": doc, "chunks": n})
}

func (h *ReferenceCtrl) IngestURL(c echo.Context) error {
	var req ingestURLReq
	if err := c.Bind(&req); err != nil {
		return apierr.Write(c, apierr.Validation("invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return apierr.Write(c, apierr.Validation("%v", err))
	}
	doc, n, err := h.s.IngestURL(req.URL, req.Title, req.Tags)
	switch {
	case errors.Is(err, service.ErrDomainNotAllowed):
		return apierr.Write(c, apierr.New(http.StatusForbidden, "domain_not_allowed", err))
	case errors.Is(err, service.ErrFetch):
		return apierr.Write(c, apierr.New(http.StatusBadGateway, "fetch_failed", err))
	case err != nil:
		return apierr.Write(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"doc": doc, "chunks": n})
}

func (h *ReferenceCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return apierr.Write(c, apierr.Validation("q required"))
	}
	k := 6
	if v := c.QueryParam("k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 50 {
			return apierr.Write(c, apierr.Validation("k must be 1..50"))
		}
		k = n
	}
	out, err := h.s.Search(q, k)
	if err != nil {
		return apierr.Write(c, err)
	}
	if out == nil {
		out = []service.Hit{}
	}
	return c.JSON(http.StatusOK, out)
}
