package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PATH", "LOG_MODE", "GOOGLE_API_KEY", "REFERENCE_MAX_BYTES", "REFERENCE_ALLOWED_DOMAINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "tubeplan.db", cfg.DBPath)
	assert.Equal(t, "", cfg.GoogleAPIKey)
	assert.Equal(t, int64(2_000_000), cfg.ReferenceMaxBytes)
	assert.Nil(t, cfg.ReferenceAllowedDomains)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("REFERENCE_MAX_BYTES", "not-a-number")
	t.Setenv("REFERENCE_ALLOWED_DOMAINS", " Example.com, ,blog.example.org ")
	cfg := Load()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, int64(2_000_000), cfg.ReferenceMaxBytes)
	assert.Equal(t, []string{"example.com", "blog.example.org"}, cfg.ReferenceAllowedDomains)
}
