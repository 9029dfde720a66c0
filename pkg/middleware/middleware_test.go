package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubeplan/pkg/logger"
	"tubeplan/pkg/metrics"
)

func newEcho(t *testing.T, key string) *echo.Echo {
	t.Helper()
	log, err := logger.New("nop")
	require.NoError(t, err)
	e := echo.New()
	e.Validator = NewValidator()
	e.Use(RequestLog(log, metrics.New(prometheus.NewRegistry())))
	e.Use(APIKey(key, "/health"))
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/ideas", func(c echo.Context) error { return c.String(http.StatusOK, "ideas") })
	return e
}

func TestAPIKeyDisabled(t *testing.T) {
	e := newEcho(t, "")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ideas", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestAPIKeyEnforced(t *testing.T) {
	e := newEcho(t, "s3cret")

	tests := []struct {
		name   string
		path   string
		header map[string]string
		want   int
	}{
		{"missing", "/ideas", nil, http.StatusUnauthorized},
		{"wrong", "/ideas", map[string]string{HeaderAPIKey: "nope"}, http.StatusUnauthorized},
		{"header", "/ideas", map[string]string{HeaderAPIKey: "s3cret"}, http.StatusOK},
		{"bearer", "/ideas", map[string]string{echo.HeaderAuthorization: "Bearer s3cret"}, http.StatusOK},
		{"skipped path", "/health", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequestIDPropagates(t *testing.T) {
	e := newEcho(t, "")
	req := httptest.NewRequest(http.MethodGet, "/ideas", nil)
	req.Header.Set(HeaderRequestID, "rid-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "rid-1", rec.Header().Get(HeaderRequestID))
}

func TestValidator(t *testing.T) {
	type req struct {
		Count int `validate:"min=1,max=500"`
	}
	v := NewValidator()
	assert.NoError(t, v.Validate(&req{Count: 30}))
	assert.Error(t, v.Validate(&req{Count: 0}))
}
