package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPageSource(t *testing.T) {
	tests := []struct {
		name  string
		tag   language.Tag
		index int
		want  string
	}{
		{name: "first page is one-based", tag: language.English, index: 0, want: "Page 1"},
		{name: "english grouping", tag: language.English, index: 999, want: "Page 1,000"},
		{name: "german grouping", tag: language.German, index: 1233, want: "Page 1.234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewPageSource(2000, tt.tag)
			assert.Equal(t, tt.want, src.TitleAt(tt.index))
		})
	}

	assert.Equal(t, 100, NewPageSource(100, language.English).Count())
	assert.Zero(t, NewPageSource(-3, language.English).Count())
}
