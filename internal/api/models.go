package api

import "github.com/BerylCAtieno/socialsense/internal/models"

type ScrapeRequest struct {
	URL string `json:"url" binding:"required"`
}

// ScrapeResponse is the post itself; Error and Details are set only when the
// scrape degraded to a placeholder.
type ScrapeResponse struct {
	models.PostData
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

type GenerateRequest struct {
	PostData        models.PostData        `json:"postData"`
	BusinessProfile models.BusinessProfile `json:"businessProfile"`
}

type GenerateResponse struct {
	Comments []string `json:"comments"`
}

type ErrorResponse struct {
	Error    string   `json:"error"`
	Details  string   `json:"details,omitempty"`
	Comments []string `json:"comments,omitempty"`
}

// Error messages
const (
	ErrInvalidURL       = "Invalid Instagram URL"
	ErrScrapeFailed     = "Scraping failed"
	ErrMissingAPIKey    = "Missing API Key"
	ErrGenerationFailed = "AI Generation Failed"
)
