package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tubeplan/config"
	"tubeplan/entities"
	"tubeplan/pkg/logger"
)

func openTemp(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "test.db")}
}

func TestOpenMigratesAndIsIdempotent(t *testing.T) {
	cfg := openTemp(t)
	db, err := Open(cfg, nil)
	require.NoError(t, err)

	for _, tbl := range []string{"channel_configs", "video_ideas", "video_assets", "metric_snapshots", "experiments", "reference_docs", "reference_chunks"} {
		assert.True(t, db.Migrator().HasTable(tbl), tbl)
	}
	assert.True(t, db.Migrator().HasIndex(&entities.VideoIdea{}, "idx_video_ideas_status_score"))

	_, err = Open(cfg, nil)
	require.NoError(t, err)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.AppConfig{DBDriver: "mysql"}, nil)
	assert.Error(t, err)

	_, err = Open(config.AppConfig{DBDriver: "postgres"}, nil)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestSeedChannelOnlyOnce(t *testing.T) {
	db, err := Open(openTemp(t), nil)
	require.NoError(t, err)

	ch, created, err := SeedChannel(db)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "My Channel", ch.ChannelName)

	again, created, err := SeedChannel(db)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, ch.ChannelID, again.ChannelID)

	var n int64
	require.NoError(t, db.Model(&entities.ChannelConfig{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSQLErrorsGoToLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	db, err := Open(openTemp(t), log)
	require.NoError(t, err)
	assert.Zero(t, logs.Len())

	require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "no_such_table")

	var ch entities.ChannelConfig
	require.Error(t, db.First(&ch).Error)
	assert.Equal(t, 1, logs.Len())
}
