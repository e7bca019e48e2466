package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"APP_ENV", "APP_PORT", "API_BASE_URL", "PUBLIC_BASE_URL", "SESSION_SECRET"} {
			t.Setenv(k, "")
		}

		cfg := LoadConfig()

		assert.Equal(t, "dev", cfg.Env)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "http://localhost:5000", cfg.APIBaseURL)
		assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		t.Setenv("APP_PORT", "3000")
		t.Setenv("API_BASE_URL", "https://api.example.com")

		cfg := LoadConfig()

		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	})

	t.Run("base URLs lose their trailing slash", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.example.com/")
		t.Setenv("PUBLIC_BASE_URL", "https://shop.example.com/")

		cfg := LoadConfig()

		assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
		assert.Equal(t, "https://shop.example.com", cfg.PublicBaseURL)
	})
}
