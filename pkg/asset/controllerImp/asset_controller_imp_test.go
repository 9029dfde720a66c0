package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubeplan/entities"
	"tubeplan/pkg/asset/repositoryImp"
	"tubeplan/pkg/testutil"
)

func setup(t *testing.T) *echo.Echo {
	t.Helper()
	r := repositoryImp.New(testutil.DB(t))
	for _, a := range []entities.VideoAsset{
		{IdeaID: 1, Titles: []string{"First"}},
		{IdeaID: 2, Titles: []string{"Second"}},
		{IdeaID: 1, Titles: []string{"Third"}},
	} {
		a := a
		require.NoError(t, r.Create(&a))
	}
	e := echo.New()
	h := New(r)
	e.GET("/assets", h.List)
	e.GET("/ideas/:id/assets", h.ByIdea)
	return e
}

func get(t *testing.T, e *echo.Echo, path string, want int) []entities.VideoAsset {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, want, rec.Code, rec.Body.String())
	if want != http.StatusOK {
		return nil
	}
	var out []entities.VideoAsset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListNewestFirst(t *testing.T) {
	e := setup(t)
	out := get(t, e, "/assets", http.StatusOK)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"Third"}, out[0].Titles)

	assert.Len(t, get(t, e, "/assets?limit=2", http.StatusOK), 2)
	get(t, e, "/assets?limit=x", http.StatusBadRequest)
}

func TestByIdea(t *testing.T) {
	e := setup(t)
	out := get(t, e, "/ideas/1/assets", http.StatusOK)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"First"}, out[0].Titles)

	assert.Empty(t, get(t, e, "/ideas/42/assets", http.StatusOK))
	get(t, e, "/ideas/-1/assets", http.StatusBadRequest)
}
