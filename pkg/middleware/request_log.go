package middleware

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tubeplan/pkg/logger"
	"tubeplan/pkg/metrics"
)

const HeaderRequestID = "X-Request-Id"

// RequestLog tags each request with an id and logs method, route, status and duration.
func RequestLog(log *logger.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			rid := c.Request().Header.Get(HeaderRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(HeaderRequestID, rid)
			c.Set("request_id", rid)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			dur := time.Since(start)
			if m != nil {
				m.RequestDuration.WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).Observe(dur.Seconds())
			}
			kv := []interface{}{
				"request_id", rid,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", dur.Milliseconds(),
			}
			if status >= 500 {
				log.Error("http request", append(kv, "error", err)...)
			} else {
				log.Info("http request", kv...)
			}
			return nil
		}
	}
}
