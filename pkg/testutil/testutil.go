// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"tubeplan/config"
	"tubeplan/database"
	"tubeplan/entities"
	"tubeplan/pkg/logger"
	"tubeplan/pkg/metrics"
)

// DB opens a migrated sqlite database in a temp dir.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	db, err := database.Open(config.AppConfig{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(tb.TempDir(), "test.db"),
	}, Logger(tb))
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	l, err := logger.New("nop")
	if err != nil {
		tb.Fatalf("logger: %v", err)
	}
	return l
}

func Metrics(tb testing.TB) *metrics.Metrics {
	tb.Helper()
	return metrics.New(prometheus.NewRegistry())
}

// SeedChannel stores a fixed profile with three pillars.
func SeedChannel(tb testing.TB, db *gorm.DB) *entities.ChannelConfig {
	tb.Helper()
	ch := &entities.ChannelConfig{
		ChannelName:    "Bean Lab",
		Niche:          "Home espresso",
		TargetViewer:   "new home baristas",
		ChannelPromise: "cafe drinks at home without guesswork",
		ToneVoice:      "calm",
		Pillars:        []string{"Dialing in", "Milk", "Gear"},
		Constraints:    map[string]any{"budget": "low", "max_minutes": float64(12)},
	}
	if err := db.Create(ch).Error; err != nil {
		tb.Fatalf("seed channel: %v", err)
	}
	return ch
}
