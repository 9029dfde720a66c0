package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubeplan/entities"
	"tubeplan/pkg/metric/repositoryImp"
	"tubeplan/pkg/metrics"
	"tubeplan/pkg/middleware"
	tu "tubeplan/pkg/testutil"
)

func setup(t *testing.T) (*echo.Echo, *metrics.Metrics) {
	t.Helper()
	m := tu.Metrics(t)
	e := echo.New()
	e.Validator = middleware.NewValidator()
	h := New(repositoryImp.New(tu.DB(t)), m)
	e.GET("/snapshots", h.List)
	e.POST("/snapshots", h.Create)
	return e, m
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateSnapshot(t *testing.T) {
	e, m := setup(t)

	rec := do(e, http.MethodPost, "/snapshots",
		`{"youtube_video_id":"abc123","idea_id":4,"snapshot_date":"2026-03-02","impressions":1000,"ctr":0.05,"views":50,"notes":{"source":"studio"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got entities.MetricSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotZero(t, got.SnapshotID)
	assert.Equal(t, "abc123", got.YouTubeVideoID)
	require.NotNil(t, got.IdeaID)
	assert.EqualValues(t, 4, *got.IdeaID)
	assert.Equal(t, "2026-03-02", got.SnapshotDate.Format("2006-01-02"))
	assert.EqualValues(t, 50, got.Views)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SnapshotsCreated))
}

func TestCreateDefaultsToToday(t *testing.T) {
	e, _ := setup(t)
	rec := do(e, http.MethodPost, "/snapshots", `{"views":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got entities.MetricSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), got.SnapshotDate.UTC().Format("2006-01-02"))
}

func TestCreateValidation(t *testing.T) {
	e, m := setup(t)

	for name, body := range map[string]string{
		"views missing": `{"ctr":0.1}`,
		"ctr too high":  `{"views":1,"ctr":1.5}`,
		"bad date":      `{"views":1,"snapshot_date":"02/03/2026"}`,
		"negative":      `{"views":-3}`,
		"not json":      `{views`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/snapshots", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SnapshotsCreated))
}

func TestListNewestFirst(t *testing.T) {
	e, _ := setup(t)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/snapshots", `{"views":1,"snapshot_date":"2026-01-01"}`).Code)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/snapshots", `{"views":2,"snapshot_date":"2026-02-01"}`).Code)

	rec := do(e, http.MethodGet, "/snapshots", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []entities.MetricSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.EqualValues(t, 2, out[0].Views)

	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/snapshots?limit=0", "").Code)
}
