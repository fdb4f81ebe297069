package config

import (
	"os"
	"strings"
)

// Config holds runtime configuration for the API server.
type Config struct {
	Env         string
	HTTPPort    string
	PostgresDSN string
	CORSOrigins []string
}

// Load reads configuration from environment variables with defaults that
// work for local development.
func Load() Config {
	return Config{
		Env:         getEnv("APP_ENV", "dev"),
		HTTPPort:    getEnv("HTTP_PORT", "4000"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=postgres password=password dbname=jobdeck port=5432 sslmode=disable"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:5173"}),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
