package commenter

import (
	"fmt"
	"strings"

	"github.com/BerylCAtieno/socialsense/internal/models"
)

const captionLimit = 500

func buildPrompt(post models.PostData, profile models.BusinessProfile) string {
	tone := orDefault(string(profile.Tone), string(models.ToneProfessional))
	niche := orDefault(profile.Niche, "General")
	brandName := orDefault(profile.Name, "our brand")

	caption := orDefault(post.Caption, "No caption found.")
	username := orDefault(post.Username, "unknown")
	hashtags := strings.Join(post.Hashtags, ", ")

	audience := ""
	if strings.TrimSpace(profile.TargetAudience) != "" {
		audience = fmt.Sprintf("Your target audience: %s\n", profile.TargetAudience)
	}

	return fmt.Sprintf(`You are a social media expert managing the account for "%s" in the "%s" industry.
Your tone is: %s
Your key selling point (USP): %s
%s
Goal: Write 5 distinct, authentic, and engaging Instagram comments for the following post.
The comments should:
1. Be highly relevant to the VIDEO content (if provided) or Image + Caption.
2. Be natural (like a real human).
3. Subtly align with our brand values.
4. Vary in length (short punchy vs slightly longer value-add).
5. Use emojis appropriately to match "%s".

Target Post Context:
- Author: %s
- Caption: "%s..."
- Hashtags: %s

Return ONLY the 5 comments as a JSON array of strings.`,
		brandName, niche, tone, profile.USP, audience, tone, username, truncateRunes(caption, captionLimit), hashtags)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
