package scraper

import (
	"context"
	"time"

	"github.com/BerylCAtieno/socialsense/internal/apperrors"
	"github.com/BerylCAtieno/socialsense/internal/models"
	"github.com/sirupsen/logrus"
)

type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeDegraded
)

func (o Outcome) String() string {
	if o == OutcomeDegraded {
		return "degraded"
	}
	return "ok"
}

// Result is either Ok(post) or Degraded(placeholder, reason). Both are
// successful answers for the caller; only the Degraded variant carries a reason.
type Result struct {
	Outcome Outcome
	Post    models.PostData
	Reason  string
}

func Ok(post models.PostData) Result {
	return Result{Outcome: OutcomeOK, Post: post}
}

func Degraded(post models.PostData, reason string) Result {
	return Result{Outcome: OutcomeDegraded, Post: post, Reason: reason}
}

func (r Result) IsDegraded() bool {
	return r.Outcome == OutcomeDegraded
}

type Gateway struct {
	fetcher Fetcher
	log     *logrus.Entry
	now     func() time.Time
}

func NewGateway(fetcher Fetcher, log *logrus.Entry) *Gateway {
	return &Gateway{
		fetcher: fetcher,
		log:     log,
		now:     time.Now,
	}
}

// Scrape validates the link, calls the fetcher once and normalizes its output.
// The only error it returns is InvalidInput; scrape failures come back as a
// Degraded result.
func (g *Gateway) Scrape(ctx context.Context, postURL string) (Result, error) {
	if !IsSupportedURL(postURL) {
		return Result{}, apperrors.New(apperrors.CodeInvalidInput, "Invalid Instagram URL")
	}

	log := g.log.WithField("url", postURL)
	log.Info("Scraping post")

	raw, err := g.fetcher.Fetch(ctx, postURL)
	if err == nil {
		var post models.PostData
		post, err = normalize(raw, g.now())
		if err == nil {
			log.WithFields(logrus.Fields{
				"media_count": len(raw.URLList),
				"type":        post.Type,
			}).Debug("Scrape succeeded")
			return Ok(post), nil
		}
	}

	log.WithError(err).Warn("Scrape failed, returning placeholder post")
	return Degraded(placeholderPost(g.now()), err.Error()), nil
}
