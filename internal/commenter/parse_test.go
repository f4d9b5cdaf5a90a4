package commenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComments(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "fenced json",
			reply: "```json\n[\"a\",\"b\"]\n```",
			want:  []string{"a", "b"},
		},
		{
			name:  "bare json",
			reply: `["Love this energy! 💪", "Great form on that lift"]`,
			want:  []string{"Love this energy! 💪", "Great form on that lift"},
		},
		{
			name:  "numbered fallback",
			reply: "1. Nice post!\n2. Love it!\nx",
			want:  []string{"Nice post!", "Love it!"},
		},
		{
			name:  "dashes and quotes",
			reply: "Here you go:\n- \"So inspiring, thanks for sharing\"\n- \"Saving this one\"",
			want:  []string{"Here you go:", "So inspiring, thanks for sharing", "Saving this one"},
		},
		{
			name:  "json of wrong shape falls back",
			reply: `{"comments": ["a"]}`,
			want:  []string{`{comments: [a]}`},
		},
		{
			name:  "empty",
			reply: "",
			want:  []string{},
		},
		{
			name:  "null",
			reply: "null",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseComments(tt.reply))
		})
	}
}
