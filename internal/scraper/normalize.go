package scraper

import (
	"regexp"
	"strings"
	"time"

	"github.com/BerylCAtieno/socialsense/internal/apperrors"
	"github.com/BerylCAtieno/socialsense/internal/models"
)

const (
	supportedHostMarker = "instagram.com/"
	videoMarker         = ".mp4"

	unknownOwner = "Unknown"

	placeholderUsername = "Unknown User"
	placeholderCaption  = "Could not retrieve data via the scraper. Please ensure the link is public."
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// IsSupportedURL reports whether the link looks like an Instagram post.
func IsSupportedURL(postURL string) bool {
	return strings.Contains(postURL, supportedHostMarker)
}

// ExtractHashtags returns the #word tokens of a caption in order of appearance.
func ExtractHashtags(caption string) []string {
	tags := hashtagPattern.FindAllString(caption, -1)
	if tags == nil {
		return []string{}
	}
	return tags
}

func isVideoURL(u string) bool {
	return strings.Contains(u, videoMarker)
}

// normalize applies the defaulting rules once and produces the fixed PostData shape.
func normalize(raw *RawResult, now time.Time) (models.PostData, error) {
	if raw == nil || len(raw.URLList) == 0 {
		return models.PostData{}, apperrors.New(apperrors.CodeNoMediaFound, "No media found (Private or Login Wall)")
	}

	info := raw.PostInfo
	if info == nil {
		info = &RawPostInfo{}
	}

	username := unknownOwner
	if info.Owner != nil && info.Owner.Username != nil && *info.Owner.Username != "" {
		username = *info.Owner.Username
	}

	caption := ""
	if info.Caption != nil {
		caption = *info.Caption
	}

	likes, comments := 0, 0
	if info.Likes != nil {
		likes = *info.Likes
	}
	if info.Comments != nil {
		comments = *info.Comments
	}

	var videoURL *string
	for _, u := range raw.URLList {
		if isVideoURL(u) {
			videoURL = strPtr(u)
			break
		}
	}

	postType := models.PostTypeImage
	if isVideoURL(raw.URLList[0]) {
		postType = models.PostTypeVideo
	}

	return models.PostData{
		Username:      username,
		Caption:       caption,
		MediaURL:      raw.URLList[0],
		VideoURL:      videoURL,
		Hashtags:      ExtractHashtags(caption),
		Likes:         likes,
		CommentsCount: comments,
		Timestamp:     now.UTC(),
		Type:          postType,
	}, nil
}

func placeholderPost(now time.Time) models.PostData {
	return models.PostData{
		Username:  placeholderUsername,
		Caption:   placeholderCaption,
		Hashtags:  []string{},
		Timestamp: now.UTC(),
		Type:      models.PostTypePost,
	}
}
