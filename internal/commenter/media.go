package commenter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/socialsense/internal/models"
	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
)

type MediaKind string

const (
	MediaNone  MediaKind = "none"
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// MediaFetcher downloads post media so it can be sent inline with the prompt.
type MediaFetcher struct {
	httpClient    *http.Client
	maxVideoBytes int64
	log           *logrus.Entry
}

func NewMediaFetcher(timeout time.Duration, maxVideoBytes int64, log *logrus.Entry) *MediaFetcher {
	return &MediaFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxVideoBytes: maxVideoBytes,
		log:           log,
	}
}

// Attach returns at most one inline part for the post: the video when its
// size is known and under the ceiling, otherwise the image. Fetch problems are
// logged and yield no part.
func (m *MediaFetcher) Attach(ctx context.Context, post models.PostData) (genai.Part, MediaKind) {
	if video := post.Video(); isHTTP(video) {
		blob, err := m.fetchVideo(ctx, video)
		if err == nil {
			m.log.WithField("bytes", len(blob.Data)).Info("Attached video to prompt")
			return blob, MediaVideo
		}
		m.log.WithError(err).WithField("url", video).Warn("Skipping video, falling back to image")
	}

	if image := post.MediaURL; isHTTP(image) && !isVideoURL(image, post) {
		blob, err := m.fetchImage(ctx, image)
		if err == nil {
			m.log.WithField("bytes", len(blob.Data)).Info("Attached image to prompt")
			return blob, MediaImage
		}
		m.log.WithError(err).WithField("url", image).Warn("Error fetching image, continuing text-only")
	}

	return nil, MediaNone
}

func (m *MediaFetcher) fetchVideo(ctx context.Context, url string) (genai.Blob, error) {
	size, err := m.probeSize(ctx, url)
	if err != nil {
		return genai.Blob{}, err
	}
	if size <= 0 || size >= m.maxVideoBytes {
		return genai.Blob{}, fmt.Errorf("video too large (%.2fMB) or of unknown size", float64(size)/1024/1024)
	}

	resp, err := m.get(ctx, url)
	if err != nil {
		return genai.Blob{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, m.maxVideoBytes+1))
	if err != nil {
		return genai.Blob{}, fmt.Errorf("failed to read video: %w", err)
	}
	if int64(len(data)) > m.maxVideoBytes {
		return genai.Blob{}, fmt.Errorf("video body exceeds %d bytes", m.maxVideoBytes)
	}

	return genai.Blob{MIMEType: "video/mp4", Data: data}, nil
}

func (m *MediaFetcher) fetchImage(ctx context.Context, url string) (genai.Blob, error) {
	resp, err := m.get(ctx, url)
	if err != nil {
		return genai.Blob{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return genai.Blob{}, fmt.Errorf("failed to read image: %w", err)
	}

	mimeType := "image/jpeg"
	if ct := resp.Header.Get("Content-Type"); strings.HasPrefix(ct, "image/") {
		mimeType = strings.TrimSpace(strings.Split(ct, ";")[0])
	}

	return genai.Blob{MIMEType: mimeType, Data: data}, nil
}

// probeSize issues a HEAD request and returns the reported length, -1 if unknown.
func (m *MediaFetcher) probeSize(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build HEAD request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HEAD request failed: %w", err)
	}
	resp.Body.Close()

	return resp.ContentLength, nil
}

func (m *MediaFetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("media returned status %d", resp.StatusCode)
	}
	return resp, nil
}

func isHTTP(u string) bool {
	return strings.HasPrefix(u, "http")
}

// isVideoURL reports whether the primary media is the post's video rather
// than a still image.
func isVideoURL(u string, post models.PostData) bool {
	return u == post.Video() || strings.Contains(u, ".mp4")
}
