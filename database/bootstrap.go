// database/bootstrap.go
package database

import (
	"errors"
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tubeplan/config"
	"tubeplan/entities"
	"tubeplan/pkg/logger"
)

// Open connects with the configured driver and brings the schema up to date.
// Slow queries and SQL errors go to log; a nil log discards them.
func Open(cfg config.AppConfig, log *logger.Logger) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "", "sqlite":
		dial = sqlite.Open(cfg.DBPath)
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
		}
		dial = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dial, &gorm.Config{Logger: sqlLogger(log)})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.ChannelConfig{},
		&entities.VideoIdea{},
		&entities.VideoAsset{},
		&entities.MetricSnapshot{},
		&entities.Experiment{},
		&entities.ReferenceDoc{},
		&entities.ReferenceChunk{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := ensureBacklogIndex(db); err != nil {
		return fmt.Errorf("backlog index: %w", err)
	}
	return nil
}

func sqlLogger(log *logger.Logger) gormlogger.Interface {
	if log == nil {
		return gormlogger.Discard
	}
	return gormlogger.New(
		zap.NewStdLog(log.SugaredLogger.Desugar()),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// ensureBacklogIndex backs the top-N query (status filter, score order).
func ensureBacklogIndex(db *gorm.DB) error {
	return db.Exec(`CREATE INDEX IF NOT EXISTS idx_video_ideas_status_score ON video_ideas (status, score_total DESC, idea_id)`).Error
}

func DefaultChannel() *entities.ChannelConfig {
	return &entities.ChannelConfig{
		ChannelName:    "My Channel",
		Niche:          "General",
		TargetViewer:   "curious beginners",
		ChannelPromise: "practical videos you can act on the same day",
		ToneVoice:      "friendly and direct",
		Pillars:        []string{"Tutorials", "Case studies", "Q&A"},
		Constraints:    map[string]any{"max_video_minutes": 12, "uploads_per_week": 1},
	}
}

// SeedChannel creates the default profile only when no profile exists.
func SeedChannel(db *gorm.DB) (*entities.ChannelConfig, bool, error) {
	var cur entities.ChannelConfig
	err := db.Order("channel_id DESC").First(&cur).Error
	if err == nil {
		return &cur, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	ch := DefaultChannel()
	if err := db.Create(ch).Error; err != nil {
		return nil, false, err
	}
	return ch, true, nil
}
