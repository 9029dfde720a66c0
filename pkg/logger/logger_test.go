package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{"google_api_key", "abc", "count", 3, "API_KEY", "x", "dangling"})
	assert.Equal(t, []interface{}{"google_api_key", "[REDACTED]", "count", 3, "API_KEY", "[REDACTED]", "dangling"}, got)
}

func TestNewTestModeIsSilent(t *testing.T) {
	l, err := New("test")
	require.NoError(t, err)
	l.With("run_id", "r1").Info("hello", "k", "v")
	l.Sync()
}
