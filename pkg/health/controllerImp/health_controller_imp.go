package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewHealthCtrl checks the database and, when rdb is non-nil, the search cache.
func NewHealthCtrl(db *gorm.DB, rdb *redis.Client) *HealthCtrl {
	return &HealthCtrl{db: db, rdb: rdb}
}

type sub struct {
	OK       bool   `json:"ok"`
	Err      string `json:"err,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbCheck := h.checkDB(ctx)
	cacheCheck := h.checkCache(ctx)

	// the cache is optional; only the database decides the status code
	status := http.StatusOK
	if !dbCheck.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": dbCheck.OK && cacheCheck.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": dbCheck,
			"cache":    cacheCheck,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) checkDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}

func (h *HealthCtrl) checkCache(ctx context.Context) sub {
	if h.rdb == nil {
		return sub{OK: true, Disabled: true}
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}
