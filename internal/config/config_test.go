package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "SCRAPER_BACKEND", "SCRAPE_TIMEOUT", "MEDIA_TIMEOUT", "MAX_VIDEO_BYTES", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, BackendHTTP, cfg.ScraperBackend)
	assert.Equal(t, 30*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxVideoBytes)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "  env-key ")
	t.Setenv("SCRAPER_BACKEND", "Browser")
	t.Setenv("SCRAPE_TIMEOUT", "5s")
	t.Setenv("MAX_VIDEO_BYTES", "1024")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	assert.Equal(t, BackendBrowser, cfg.ScraperBackend)
	assert.Equal(t, 5*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, int64(1024), cfg.MaxVideoBytes)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadIgnoresUnknownBackendAndBadNumbers(t *testing.T) {
	t.Setenv("SCRAPER_BACKEND", "carrier-pigeon")
	t.Setenv("MAX_VIDEO_BYTES", "lots")
	t.Setenv("MEDIA_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, BackendHTTP, cfg.ScraperBackend)
	assert.Equal(t, int64(DefaultMaxVideoBytes), cfg.MaxVideoBytes)
	assert.Equal(t, 60*time.Second, cfg.MediaTimeout)
}
