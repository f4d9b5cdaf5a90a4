package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/socialsense/internal/apperrors"
	"github.com/BerylCAtieno/socialsense/internal/commenter"
	"github.com/BerylCAtieno/socialsense/internal/metrics"
	"github.com/BerylCAtieno/socialsense/internal/models"
	"github.com/BerylCAtieno/socialsense/internal/scraper"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Scraper interface {
	Scrape(ctx context.Context, postURL string) (scraper.Result, error)
}

type CommentGenerator interface {
	Generate(ctx context.Context, post models.PostData, profile models.BusinessProfile) (*commenter.Generation, error)
}

type Handler struct {
	scraper   Scraper
	generator CommentGenerator
	metrics   *metrics.Collector
	log       *logrus.Entry
}

func NewHandler(s Scraper, g CommentGenerator, m *metrics.Collector, log *logrus.Entry) *Handler {
	return &Handler{
		scraper:   s,
		generator: g,
		metrics:   m,
		log:       log,
	}
}

// HandleScrape answers 200 for both real and placeholder posts; only a
// missing or unsupported link is rejected.
func (h *Handler) HandleScrape(c *gin.Context) {
	log := requestLogger(c, h.log)

	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("Rejecting scrape request")
		h.metrics.ScrapeOutcome("invalid")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrInvalidURL})
		return
	}

	result, err := h.scraper.Scrape(c.Request.Context(), strings.TrimSpace(req.URL))
	if err != nil {
		log.WithError(err).Warn("Rejecting scrape request")
		h.metrics.ScrapeOutcome("invalid")
		c.JSON(apperrors.StatusCode(err), ErrorResponse{Error: ErrInvalidURL})
		return
	}

	h.metrics.ScrapeOutcome(result.Outcome.String())

	resp := ScrapeResponse{PostData: result.Post}
	if result.IsDegraded() {
		resp.Error = ErrScrapeFailed
		resp.Details = result.Reason
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) HandleGenerate(c *gin.Context) {
	log := requestLogger(c, h.log)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Error("Failed to decode generate request")
		h.metrics.GenerationOutcome("failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrGenerationFailed, Details: err.Error()})
		return
	}

	gen, err := h.generator.Generate(c.Request.Context(), req.PostData, req.BusinessProfile)
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingCredential) {
			log.Warn("No Gemini API key in profile or environment")
			h.metrics.GenerationOutcome("missing_credential")
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:    ErrMissingAPIKey,
				Comments: []string{commenter.MissingKeyMessage},
			})
			return
		}

		details := err.Error()
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			details = appErr.Details()
		}

		log.WithError(err).Error("Generation failed")
		h.metrics.GenerationOutcome("failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrGenerationFailed, Details: details})
		return
	}

	h.metrics.GenerationOutcome("ok")
	h.metrics.MediaAttached(string(gen.Media))

	c.JSON(http.StatusOK, GenerateResponse{Comments: gen.Comments})
}

func (h *Handler) HandleHealth(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": service})
	}
}
