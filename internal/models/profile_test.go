package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() BusinessProfile {
	return BusinessProfile{
		Name:           "Acme Gym",
		Niche:          "Fitness",
		TargetAudience: "Busy professionals",
		Tone:           ToneFriendly,
		USP:            "30 minute classes",
	}
}

func TestBusinessProfileValidate(t *testing.T) {
	require.NoError(t, validProfile().Validate())

	p := validProfile()
	p.Name = "  "
	p.USP = ""
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "usp")

	p = validProfile()
	p.Tone = "Sarcastic"
	err = p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sarcastic")
}

func TestPostDataVideo(t *testing.T) {
	var p PostData
	assert.Equal(t, "", p.Video())

	u := "https://cdn.example.com/a.mp4"
	p.VideoURL = &u
	assert.Equal(t, u, p.Video())
}
