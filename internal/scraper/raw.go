package scraper

import "context"

// Fetcher is the scraping dependency. It turns a post link into whatever it
// managed to read from the page; every field of the result is optional.
type Fetcher interface {
	Fetch(ctx context.Context, postURL string) (*RawResult, error)
}

// RawResult is the loosely-typed scraper output. Nil pointers mean the page
// did not expose the field. It never leaves this package.
type RawResult struct {
	URLList  []string
	PostInfo *RawPostInfo
}

type RawPostInfo struct {
	Owner    *RawOwner
	Caption  *string
	Likes    *int
	Comments *int
}

type RawOwner struct {
	Username *string
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
