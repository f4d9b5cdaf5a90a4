package scraper

import (
	"testing"

	"github.com/BerylCAtieno/socialsense/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		caption string
		want    []string
	}{
		{"Great day #fitness #motivation", []string{"#fitness", "#motivation"}},
		{"no tags here", []string{}},
		{"", []string{}},
		{"#a#b end #c_d", []string{"#a", "#b", "#c_d"}},
		{"repeat #x and #x", []string{"#x", "#x"}},
	}

	for _, tt := range tests {
		got := ExtractHashtags(tt.caption)
		assert.Equal(t, tt.want, got, tt.caption)
		assert.Equal(t, got, ExtractHashtags(tt.caption), "extraction must be stable")
	}
}

func TestNormalizeTypeClassification(t *testing.T) {
	tests := []struct {
		urls []string
		want models.PostType
	}{
		{[]string{"https://cdn.example.com/a.jpg"}, models.PostTypeImage},
		{[]string{"https://cdn.example.com/a.mp4"}, models.PostTypeVideo},
		{[]string{"https://cdn.example.com/a.mp4?efg=1", "https://cdn.example.com/b.jpg"}, models.PostTypeVideo},
		{[]string{"https://cdn.example.com/b.jpg", "https://cdn.example.com/a.mp4"}, models.PostTypeImage},
	}

	for _, tt := range tests {
		post, err := normalize(&RawResult{URLList: tt.urls}, fixedNow)
		if err != nil {
			t.Fatalf("normalize(%v) returned error: %v", tt.urls, err)
		}
		if post.Type != tt.want {
			t.Errorf("normalize(%v).Type = %q; want %q", tt.urls, post.Type, tt.want)
		}
		if post.MediaURL != tt.urls[0] {
			t.Errorf("normalize(%v).MediaURL = %q; want first entry", tt.urls, post.MediaURL)
		}
	}
}

func TestIsSupportedURL(t *testing.T) {
	assert.True(t, IsSupportedURL("https://www.instagram.com/p/abc/"))
	assert.True(t, IsSupportedURL("instagram.com/reel/abc"))
	assert.False(t, IsSupportedURL("https://instagr.am/p/abc"))
	assert.False(t, IsSupportedURL(""))
}
