package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "How to eat a fish", "how-to-eat-a-fish"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"multiple spaces", "a  b   c", "a-b-c"},
		{"leading and trailing spaces", "  padded title  ", "padded-title"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"numbers kept", "Top 10 articles of 2024", "top-10-articles-of-2024"},
		{"empty", "", ""},
		{"only punctuation", "?!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Some Title Here"), Slugify("Some Title Here"))
}
