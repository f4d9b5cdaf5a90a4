package commenter

import (
	"encoding/json"
	"regexp"
	"strings"
)

// lines this short are list debris, not comments
const minCommentLength = 6

var (
	fenceReplacer  = strings.NewReplacer("```json", "", "```", "")
	numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)
	dashPrefix     = regexp.MustCompile(`^-\s*`)
)

// ParseComments turns the model reply into comment strings. The reply should
// be a JSON array of strings; anything else goes through a line-based fallback.
func ParseComments(text string) []string {
	cleaned := strings.TrimSpace(fenceReplacer.Replace(text))

	var comments []string
	if err := json.Unmarshal([]byte(cleaned), &comments); err == nil {
		if comments == nil {
			return []string{}
		}
		return comments
	}

	return parseLines(cleaned)
}

func parseLines(text string) []string {
	comments := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minCommentLength {
			continue
		}
		line = numberedPrefix.ReplaceAllString(line, "")
		line = dashPrefix.ReplaceAllString(line, "")
		line = strings.ReplaceAll(line, `"`, "")
		comments = append(comments, line)
	}
	return comments
}
