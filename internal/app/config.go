package app

import (
	"os"
	"strings"
)

type Config struct {
	Env           string
	Port          string
	APIBaseURL    string
	PublicBaseURL string
	SessionSecret string
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func LoadConfig() Config {
	return Config{
		Env:           getEnv("APP_ENV", "dev"),
		Port:          getEnv("APP_PORT", "8080"),
		APIBaseURL:    strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-only-secret"),
	}
}
