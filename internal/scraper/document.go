package scraper

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// "1,234 likes, 56 comments - natgeo on March 3, 2024: "caption""
	ogDescriptionPattern = regexp.MustCompile(`(?s)^\s*([\d.,]+[KkMm]?)\s+likes?,\s*([\d.,]+[KkMm]?)\s+comments?\s+-\s+(\S+)\s+on\s+[^:]+:\s*(.*)$`)
	// "National Geographic (@natgeo) on Instagram: ..." or "natgeo on Instagram: ..."
	ogTitleHandlePattern = regexp.MustCompile(`\(@([\w.]+)\)`)
	ogTitleOwnerPattern  = regexp.MustCompile(`^([\w.]+) on Instagram`)
)

// parseDocument reads the Open Graph tags and any JSON-LD posting block of an
// Instagram post page.
func parseDocument(doc *goquery.Document) *RawResult {
	raw := &RawResult{}
	info := &RawPostInfo{}
	seen := make(map[string]struct{})

	add := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		raw.URLList = append(raw.URLList, u)
	}

	ld := extractPostingLD(doc)

	// videos first so a video post reports its mp4 as the primary media
	for _, u := range metaContents(doc, "og:video:secure_url", "og:video", "og:video:url") {
		add(u)
	}
	if ld != nil {
		for _, u := range ld.videos {
			add(u)
		}
	}
	for _, u := range metaContents(doc, "og:image", "og:image:secure_url") {
		add(u)
	}
	if ld != nil {
		for _, u := range ld.images {
			add(u)
		}
	}

	if desc := firstMeta(doc, "og:description"); desc != "" {
		applyOGDescription(info, desc)
	}

	if info.Owner == nil {
		if owner := ownerFromTitle(firstMeta(doc, "og:title")); owner != "" {
			info.Owner = &RawOwner{Username: strPtr(owner)}
		}
	}

	if ld != nil {
		if info.Owner == nil && ld.author != "" {
			info.Owner = &RawOwner{Username: strPtr(ld.author)}
		}
		if info.Caption == nil && ld.caption != "" {
			info.Caption = strPtr(ld.caption)
		}
		if info.Likes == nil && ld.likes != nil {
			info.Likes = ld.likes
		}
		if info.Comments == nil && ld.comments != nil {
			info.Comments = ld.comments
		}
	}

	if info.Owner != nil || info.Caption != nil || info.Likes != nil || info.Comments != nil {
		raw.PostInfo = info
	}

	return raw
}

func metaContents(doc *goquery.Document, properties ...string) []string {
	var out []string
	for _, prop := range properties {
		doc.Find(`meta[property="` + prop + `"]`).Each(func(_ int, s *goquery.Selection) {
			if content, ok := s.Attr("content"); ok && strings.TrimSpace(content) != "" {
				out = append(out, content)
			}
		})
	}
	return out
}

func firstMeta(doc *goquery.Document, property string) string {
	values := metaContents(doc, property)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func applyOGDescription(info *RawPostInfo, desc string) {
	m := ogDescriptionPattern.FindStringSubmatch(desc)
	if m == nil {
		return
	}

	if n, ok := parseCount(m[1]); ok {
		info.Likes = intPtr(n)
	}
	if n, ok := parseCount(m[2]); ok {
		info.Comments = intPtr(n)
	}
	info.Owner = &RawOwner{Username: strPtr(m[3])}

	caption := strings.TrimSpace(m[4])
	caption = strings.TrimSuffix(caption, ".")
	caption = strings.TrimPrefix(caption, `"`)
	caption = strings.TrimSuffix(caption, `"`)
	if caption != "" {
		info.Caption = strPtr(caption)
	}
}

func ownerFromTitle(title string) string {
	if title == "" {
		return ""
	}
	if m := ogTitleHandlePattern.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	if m := ogTitleOwnerPattern.FindStringSubmatch(title); m != nil {
		return m[1]
	}
	return ""
}

// parseCount understands "1,234", "12K" and "1.5M".
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	multiplier := 1.0
	switch s[len(s)-1] {
	case 'K', 'k':
		multiplier = 1_000
		s = s[:len(s)-1]
	case 'M', 'm':
		multiplier = 1_000_000
		s = s[:len(s)-1]
	}

	if multiplier == 1 {
		n, err := strconv.Atoi(strings.ReplaceAll(strings.ReplaceAll(s, ",", ""), ".", ""))
		if err != nil {
			return 0, false
		}
		return n, true
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return int(f * multiplier), true
}

type postingLD struct {
	author   string
	caption  string
	likes    *int
	comments *int
	images   []string
	videos   []string
}

func extractPostingLD(doc *goquery.Document) *postingLD {
	var result *postingLD

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}

		var probe any
		if err := json.Unmarshal([]byte(text), &probe); err != nil {
			return true
		}

		for _, obj := range asObjects(probe) {
			t, _ := obj["@type"].(string)
			if t != "SocialMediaPosting" && t != "ImageObject" && t != "VideoObject" {
				continue
			}
			result = postingFromLD(obj)
			return false
		}
		return true
	})

	return result
}

func postingFromLD(obj map[string]any) *postingLD {
	p := &postingLD{}

	for _, author := range asObjects(obj["author"]) {
		name := firstString(author, "alternateName", "identifier", "name")
		if name != "" {
			p.author = strings.TrimPrefix(name, "@")
			break
		}
	}

	p.caption = firstString(obj, "articleBody", "caption", "description")

	for _, stat := range asObjects(obj["interactionStatistic"]) {
		kind, _ := stat["interactionType"].(string)
		count, ok := stat["userInteractionCount"].(float64)
		if !ok {
			continue
		}
		n := int(count)
		switch {
		case strings.HasSuffix(kind, "LikeAction"):
			p.likes = intPtr(n)
		case strings.HasSuffix(kind, "CommentAction"):
			p.comments = intPtr(n)
		}
	}

	if t, _ := obj["@type"].(string); t == "VideoObject" {
		if u := firstString(obj, "contentUrl"); u != "" {
			p.videos = append(p.videos, u)
		}
	}
	for _, video := range asObjects(obj["video"]) {
		if u := firstString(video, "contentUrl", "url"); u != "" {
			p.videos = append(p.videos, u)
		}
	}
	for _, image := range asObjects(obj["image"]) {
		if u := firstString(image, "url", "contentUrl"); u != "" {
			p.images = append(p.images, u)
		}
	}
	if u, ok := obj["image"].(string); ok && u != "" {
		p.images = append(p.images, u)
	}

	return p
}

// asObjects accepts a JSON object, an array of objects or an @graph wrapper.
func asObjects(v any) []map[string]any {
	switch t := v.(type) {
	case map[string]any:
		if graph, ok := t["@graph"]; ok {
			return asObjects(graph)
		}
		return []map[string]any{t}
	case []any:
		var out []map[string]any
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		case map[string]any:
			if s, ok := v["value"].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
