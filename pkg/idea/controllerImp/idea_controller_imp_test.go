package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tubeplan/entities"
	"tubeplan/pkg/idea/repositoryImp"
	"tubeplan/pkg/middleware"
	"tubeplan/pkg/testutil"
)

func setup(t *testing.T) *echo.Echo {
	t.Helper()
	db := testutil.DB(t)
	r := repositoryImp.New(db)
	require.NoError(t, r.BulkCreate([]entities.VideoIdea{
		{Pillar: "Milk", OneLiner: "Steam silky milk", Status: entities.IdeaStatusNew, ScoreTotal: 18},
		{Pillar: "Gear", OneLiner: "Pick a grinder", Status: entities.IdeaStatusQueued, ScoreTotal: 22},
		{Pillar: "Milk", OneLiner: "Latte art basics", Status: entities.IdeaStatusNew, ScoreTotal: 20},
	}))

	e := echo.New()
	e.Validator = middleware.NewValidator()
	h := New(r)
	e.GET("/ideas", h.List)
	e.GET("/ideas/export", h.Export)
	e.GET("/ideas/:id", h.Get)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestListOrdersByScore(t *testing.T) {
	e := setup(t)
	rec := get(e, "/ideas")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entities.VideoIdea
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 3)
	assert.Equal(t, "Pick a grinder", out[0].OneLiner)
	assert.Equal(t, "Latte art basics", out[1].OneLiner)
}

func TestListFilters(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name  string
		path  string
		code  int
		count int
	}{
		{"status new", "/ideas?status=new", http.StatusOK, 2},
		{"limit", "/ideas?limit=1", http.StatusOK, 1},
		{"bad status", "/ideas?status=done", http.StatusBadRequest, 0},
		{"zero limit", "/ideas?limit=0", http.StatusOK, 3},
		{"limit too big", "/ideas?limit=5000", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(e, tt.path)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.code != http.StatusOK {
				return
			}
			var out []entities.VideoIdea
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Len(t, out, tt.count)
		})
	}
}

func TestGet(t *testing.T) {
	e := setup(t)

	rec := get(e, "/ideas/2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pick a grinder")

	assert.Equal(t, http.StatusNotFound, get(e, "/ideas/99").Code)
	assert.Equal(t, http.StatusBadRequest, get(e, "/ideas/abc").Code)
}

func TestExport(t *testing.T) {
	e := setup(t)
	rec := get(e, "/ideas/export?status=new")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Backlog")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
