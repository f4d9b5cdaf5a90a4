package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	BackendHTTP    = "http"
	BackendBrowser = "browser"

	DefaultMaxVideoBytes = 10 * 1024 * 1024
)

// Config holds all service configuration loaded from the environment.
type Config struct {
	Port     string
	GinMode  string
	LogLevel logrus.Level

	// GeminiAPIKey is the fallback credential, used only when a request's
	// business profile carries no key of its own.
	GeminiAPIKey string
	GeminiModel  string

	ScraperBackend string
	ScrapeTimeout  time.Duration
	MediaTimeout   time.Duration
	MaxVideoBytes  int64
	ChromeBin      string
}

// LoadEnv loads .env files into the process environment if present.
func LoadEnv(logger *logrus.Logger) {
	files := []string{".env", ".env.local"}
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if logger != nil {
				logger.WithError(err).Warnf("Failed to load %s", file)
			}
			continue
		}
		loaded = append(loaded, file)
	}
	if logger == nil {
		return
	}
	if len(loaded) == 0 {
		logger.Debug("No .env file found, falling back to system env vars")
	} else {
		logger.Debugf("Loaded env files: %s", strings.Join(loaded, ", "))
	}
}

// Load reads the environment and returns a populated Config.
func Load() *Config {
	backend := strings.ToLower(GetEnv("SCRAPER_BACKEND", BackendHTTP))
	if backend != BackendBrowser {
		backend = BackendHTTP
	}

	return &Config{
		Port:     GetEnv("PORT", "8080"),
		GinMode:  GetEnv("GIN_MODE", "debug"),
		LogLevel: ParseLogLevel(os.Getenv("LOG_LEVEL")),

		GeminiAPIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:  GetEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		ScraperBackend: backend,
		ScrapeTimeout:  GetEnvDuration("SCRAPE_TIMEOUT", 30*time.Second),
		MediaTimeout:   GetEnvDuration("MEDIA_TIMEOUT", 60*time.Second),
		MaxVideoBytes:  int64(GetEnvInt("MAX_VIDEO_BYTES", DefaultMaxVideoBytes)),
		ChromeBin:      os.Getenv("CHROME_BIN"),
	}
}

func GetEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func ParseLogLevel(s string) logrus.Level {
	switch strings.ToLower(s) {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
