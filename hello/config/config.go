package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr           string
	StaticDir          string
	LogDir             string
	CORSAllowedOrigins []string
}

// LoadConfig reads the environment, after loading .env if one exists.
// Unset variables fall back to the fixed values the server has always used.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:           getEnv("HTTP_ADDR", "0.0.0.0:3000"),
		StaticDir:          getEnv("STATIC_DIR", "./src/static"),
		LogDir:             getEnv("LOG_DIR", "./logs"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
