package models

import (
	"fmt"
	"strings"
)

type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneBold         Tone = "Bold"
	ToneHumorous     Tone = "Humorous"
	ToneLuxury       Tone = "Luxury"
)

var Tones = []Tone{ToneProfessional, ToneFriendly, ToneBold, ToneHumorous, ToneLuxury}

func (t Tone) Valid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}

// BusinessProfile is the brand configuration a user keeps on their side and
// sends along with every generation request.
type BusinessProfile struct {
	Name           string `json:"name"`
	Niche          string `json:"niche"`
	TargetAudience string `json:"targetAudience"`
	Tone           Tone   `json:"tone"`
	USP            string `json:"usp"`
	Website        string `json:"website,omitempty"`
	APIKey         string `json:"apiKey,omitempty"`
}

// Validate checks the fields the profile form marks as required.
func (p BusinessProfile) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Niche) == "" {
		missing = append(missing, "niche")
	}
	if strings.TrimSpace(p.TargetAudience) == "" {
		missing = append(missing, "targetAudience")
	}
	if strings.TrimSpace(p.USP) == "" {
		missing = append(missing, "usp")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required profile fields: %s", strings.Join(missing, ", "))
	}
	if !p.Tone.Valid() {
		return fmt.Errorf("unknown tone %q", p.Tone)
	}
	return nil
}
