package models

import "time"

type PostType string

const (
	PostTypeImage PostType = "image"
	PostTypeVideo PostType = "video"
	PostTypePost  PostType = "post"
)

// PostData is the normalized shape of a scraped post. It is built once per
// scrape request and never mutated afterwards.
type PostData struct {
	Username      string    `json:"username"`
	Caption       string    `json:"caption"`
	MediaURL      string    `json:"mediaUrl"`
	VideoURL      *string   `json:"videoUrl"`
	Hashtags      []string  `json:"hashtags"`
	Likes         int       `json:"likes"`
	CommentsCount int       `json:"commentsCount"`
	Timestamp     time.Time `json:"timestamp"`
	Type          PostType  `json:"type"`
}

// Video returns the video URL or an empty string.
func (p PostData) Video() string {
	if p.VideoURL == nil {
		return ""
	}
	return *p.VideoURL
}
