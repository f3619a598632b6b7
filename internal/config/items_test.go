package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/hpicker/internal/config"
	"github.com/rshade/hpicker/internal/picker"
)

func TestLoadItems(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    picker.Items
	}{
		{
			name:    "plain sequence",
			content: "- Inbox\n- Archive\n",
			want:    picker.Titles("Inbox", "Archive"),
		},
		{
			name: "mapping with mixed entries",
			content: `
items:
  - Inbox
  - title: Archive
    background: "#303030"
`,
			want: picker.Items{
				{Title: "Inbox"},
				{Title: "Archive", Background: "#303030"},
			},
		},
		{
			name:    "empty document",
			content: "",
			want:    picker.Items{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := config.LoadItems(writeOverlay(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestLoadItems_Errors(t *testing.T) {
	t.Run("scalar document", func(t *testing.T) {
		_, err := config.LoadItems(writeOverlay(t, "just text\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a list of items")
	})

	t.Run("bad entry", func(t *testing.T) {
		_, err := config.LoadItems(writeOverlay(t, "- title: [a, b]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item 0")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadItems("/does/not/exist.yaml")
		require.Error(t, err)
	})
}

func TestReadItems(t *testing.T) {
	items, err := config.ReadItems(strings.NewReader("alpha\r\n\n  \nbeta gamma\n"))
	require.NoError(t, err)
	assert.Equal(t, picker.Titles("alpha", "beta gamma"), items)
}
