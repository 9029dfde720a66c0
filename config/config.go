package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBDriver    string // sqlite|postgres
	DBPath      string
	DatabaseURL string
	LogMode     string

	GoogleAPIKey       string
	RedisURL           string
	ScoringWeightsFile string
	APIKey             string

	ReferenceAllowedDomains []string
	ReferenceMaxBytes       int64

	EnvFileLoaded bool
}

func Load() AppConfig {
	// .env is optional
	envErr := godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxBytes, err := strconv.ParseInt(get("REFERENCE_MAX_BYTES", "2000000"), 10, 64)
	if err != nil || maxBytes <= 0 {
		maxBytes = 2_000_000
	}
	return AppConfig{
		Port:                    get("PORT", "8080"),
		DBDriver:                strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:                  get("DB_PATH", "tubeplan.db"),
		DatabaseURL:             get("DATABASE_URL", ""),
		LogMode:                 get("LOG_MODE", "dev"),
		GoogleAPIKey:            get("GOOGLE_API_KEY", ""),
		RedisURL:                get("REDIS_URL", ""),
		ScoringWeightsFile:      get("SCORING_WEIGHTS_FILE", ""),
		APIKey:                  get("API_KEY", ""),
		ReferenceAllowedDomains: splitList(get("REFERENCE_ALLOWED_DOMAINS", "")),
		ReferenceMaxBytes:       maxBytes,
		EnvFileLoaded:           envErr == nil,
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(strings.ToLower(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
