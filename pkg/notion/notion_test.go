package notion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPageProperties(t *testing.T) {
	entry := PageEntry{
		Title:     "Morning pages",
		Mood:      "calm",
		Tags:      []string{"daily", "health"},
		CreatedAt: time.Date(2024, time.November, 3, 7, 30, 0, 0, time.UTC),
	}

	t.Run("maps the database schema", func(t *testing.T) {
		properties := BuildPageProperties(entry, true)

		name := properties["Name"].(map[string]interface{})
		title := name["title"].([]map[string]interface{})
		require.Len(t, title, 1)
		assert.Equal(t, map[string]string{"content": "Morning pages"}, title[0]["text"])

		tags := properties["Tags"].(map[string]interface{})
		multiSelect := tags["multi_select"].([]map[string]string)
		require.Len(t, multiSelect, 2)
		assert.Equal(t, "daily", multiSelect[0]["name"])

		mood := properties["Mood"].(map[string]interface{})
		richText := mood["rich_text"].([]map[string]interface{})
		assert.Equal(t, map[string]string{"content": "calm"}, richText[0]["text"])

		date := properties["Date"].(map[string]interface{})
		assert.Equal(t, map[string]string{"start": "2024-11-03T07:30:00Z"}, date["date"])
	})

	t.Run("date is omitted for property updates", func(t *testing.T) {
		properties := BuildPageProperties(entry, false)
		assert.NotContains(t, properties, "Date")
	})

	t.Run("no tags yields an empty multi-select", func(t *testing.T) {
		properties := BuildPageProperties(PageEntry{Title: "untagged"}, false)
		tags := properties["Tags"].(map[string]interface{})
		assert.Len(t, tags["multi_select"], 0)
	})
}

func TestBuildContentBlocks(t *testing.T) {
	blocks := BuildContentBlocks("entry body")

	require.Len(t, blocks, 1)
	assert.Equal(t, "paragraph", blocks[0]["type"])

	paragraph := blocks[0]["paragraph"].(map[string]interface{})
	richText := paragraph["rich_text"].([]map[string]interface{})
	require.Len(t, richText, 1)
	assert.Equal(t, map[string]string{"content": "entry body"}, richText[0]["text"])
}
