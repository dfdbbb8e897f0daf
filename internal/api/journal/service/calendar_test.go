package journalService

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioBackend/internal/entity"
)

func TestBuildCalendarMonth(t *testing.T) {
	t.Run("grid always has 42 slots", func(t *testing.T) {
		now := time.Date(2024, time.November, 15, 12, 0, 0, 0, time.Local)

		for month := time.January; month <= time.December; month++ {
			grid := buildCalendarMonth(2024, month, nil, now)
			assert.Len(t, grid.Days, calendarSlots, "month %s", month)
		}
	})

	t.Run("leading blanks match the first weekday", func(t *testing.T) {
		now := time.Date(2024, time.November, 15, 12, 0, 0, 0, time.Local)

		// November 2024 starts on a Friday, five blanks before day 1.
		grid := buildCalendarMonth(2024, time.November, nil, now)
		for i := 0; i < 5; i++ {
			assert.True(t, grid.Days[i].Blank)
		}
		require.False(t, grid.Days[5].Blank)
		assert.Equal(t, 1, grid.Days[5].Day)

		// September 2024 starts on a Sunday, no leading blanks.
		grid = buildCalendarMonth(2024, time.September, nil, now)
		assert.False(t, grid.Days[0].Blank)
		assert.Equal(t, 1, grid.Days[0].Day)
	})

	t.Run("entries are counted per day", func(t *testing.T) {
		now := time.Date(2024, time.November, 15, 12, 0, 0, 0, time.Local)
		entries := []entity.JournalEntry{
			{ID: "e1", CreatedAt: time.Date(2024, time.November, 3, 9, 0, 0, 0, time.Local)},
			{ID: "e2", CreatedAt: time.Date(2024, time.November, 3, 21, 0, 0, 0, time.Local)},
			{ID: "e3", CreatedAt: time.Date(2024, time.November, 10, 8, 0, 0, 0, time.Local)},
			{ID: "e4", CreatedAt: time.Date(2024, time.October, 3, 8, 0, 0, 0, time.Local)},
		}

		grid := buildCalendarMonth(2024, time.November, entries, now)

		byDay := make(map[int]int)
		for _, slot := range grid.Days {
			if !slot.Blank {
				byDay[slot.Day] = slot.Entries
			}
		}

		assert.Equal(t, 2, byDay[3])
		assert.Equal(t, 1, byDay[10])
		assert.Equal(t, 0, byDay[4])
	})

	t.Run("today and future flags", func(t *testing.T) {
		now := time.Date(2024, time.November, 15, 12, 0, 0, 0, time.Local)
		grid := buildCalendarMonth(2024, time.November, nil, now)

		for _, slot := range grid.Days {
			if slot.Blank {
				continue
			}
			assert.Equal(t, slot.Day == 15, slot.IsToday, "day %d", slot.Day)
			assert.Equal(t, slot.Day > 15, slot.Future, "day %d", slot.Day)
		}
	})

	t.Run("other months never flag today", func(t *testing.T) {
		now := time.Date(2024, time.November, 15, 12, 0, 0, 0, time.Local)
		grid := buildCalendarMonth(2024, time.October, nil, now)

		for _, slot := range grid.Days {
			assert.False(t, slot.IsToday)
			assert.False(t, slot.Future)
		}
	})
}

func TestFilterEntries(t *testing.T) {
	entries := []entity.JournalEntry{
		{
			ID:        "e1",
			Title:     "Morning run",
			Content:   "5k around the park",
			Tags:      []string{"fitness"},
			CreatedAt: time.Date(2024, time.November, 3, 7, 0, 0, 0, time.Local),
		},
		{
			ID:        "e2",
			Title:     "Reading notes",
			Content:   "finished the distributed systems chapter",
			Tags:      []string{"books"},
			CreatedAt: time.Date(2024, time.November, 4, 22, 0, 0, 0, time.Local),
		},
	}

	t.Run("no filters returns everything", func(t *testing.T) {
		assert.Len(t, filterEntries(entries, "", ""), 2)
	})

	t.Run("query matches title, content and tags case-insensitively", func(t *testing.T) {
		assert.Len(t, filterEntries(entries, "MORNING", ""), 1)
		assert.Len(t, filterEntries(entries, "distributed", ""), 1)
		assert.Len(t, filterEntries(entries, "fitness", ""), 1)
		assert.Len(t, filterEntries(entries, "swimming", ""), 0)
	})

	t.Run("day filter keeps only that calendar day", func(t *testing.T) {
		matched := filterEntries(entries, "", "2024-11-03")
		require.Len(t, matched, 1)
		assert.Equal(t, "e1", matched[0].ID)
	})

	t.Run("query and day combine", func(t *testing.T) {
		assert.Len(t, filterEntries(entries, "reading", "2024-11-03"), 0)
		assert.Len(t, filterEntries(entries, "reading", "2024-11-04"), 1)
	})

	t.Run("malformed day is ignored", func(t *testing.T) {
		assert.Len(t, filterEntries(entries, "", "november 3rd"), 2)
	})
}
