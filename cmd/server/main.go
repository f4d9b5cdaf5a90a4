package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/socialsense/internal/api"
	"github.com/BerylCAtieno/socialsense/internal/commenter"
	"github.com/BerylCAtieno/socialsense/internal/config"
	"github.com/BerylCAtieno/socialsense/internal/logging"
	"github.com/BerylCAtieno/socialsense/internal/metrics"
	"github.com/BerylCAtieno/socialsense/internal/scraper"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const serviceName = "socialsense"

func main() {
	config.LoadEnv(nil)
	cfg := config.Load()

	log := logging.New(serviceName, cfg.LogLevel)

	if cfg.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set; requests must carry an API key in their business profile")
	}

	var fetcher scraper.Fetcher
	switch cfg.ScraperBackend {
	case config.BackendBrowser:
		fetcher = scraper.NewBrowserFetcher(cfg.ScrapeTimeout, cfg.ChromeBin)
	default:
		fetcher = scraper.NewHTTPFetcher(cfg.ScrapeTimeout)
	}

	gateway := scraper.NewGateway(fetcher, log.WithField("component", "scraper"))

	generator := commenter.NewGenerator(
		cfg.GeminiAPIKey,
		commenter.NewGeminiFactory(cfg.GeminiModel),
		commenter.NewMediaFetcher(cfg.MediaTimeout, cfg.MaxVideoBytes, log.WithField("component", "media")),
		log.WithField("component", "commenter"),
	)

	collector := metrics.New(serviceName)
	handler := api.NewHandler(gateway, generator, collector, log.WithField("component", "api"))

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(handler, collector, log, serviceName)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"port":    cfg.Port,
			"backend": cfg.ScraperBackend,
			"model":   cfg.GeminiModel,
		}).Info("SocialSense comment service starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
