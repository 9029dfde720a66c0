package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubeplan/config"
	"tubeplan/pkg/scoring"
	"tubeplan/pkg/testutil"
)

func TestNewWiresDefaults(t *testing.T) {
	cfg := config.AppConfig{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "app.db")}
	a, err := New(context.Background(), cfg, testutil.Logger(t))
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Redis)
	assert.Equal(t, scoring.DefaultWeights(), a.Weights)
	assert.NotNil(t, a.Workflow)
	assert.NotNil(t, a.Channel)
}

func TestNewLoadsWeightsFile(t *testing.T) {
	dir := t.TempDir()
	wf := filepath.Join(dir, "weights.yaml")
	require.NoError(t, os.WriteFile(wf, []byte("weights:\n  channel_fit: 2.0\n"), 0o644))

	cfg := config.AppConfig{DBDriver: "sqlite", DBPath: filepath.Join(dir, "app.db"), ScoringWeightsFile: wf}
	a, err := New(context.Background(), cfg, testutil.Logger(t))
	require.NoError(t, err)
	defer a.Close()
	assert.Equal(t, 2.0, a.Weights.ChannelFit)
	assert.Equal(t, 1.2, a.Weights.PainIntensity)
}

func TestNewRejectsBadWeights(t *testing.T) {
	dir := t.TempDir()
	cfg := config.AppConfig{DBDriver: "sqlite", DBPath: filepath.Join(dir, "app.db"), ScoringWeightsFile: filepath.Join(dir, "missing.csv")}
	_, err := New(context.Background(), cfg, testutil.Logger(t))
	assert.Error(t, err)
}
