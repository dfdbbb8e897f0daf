package journalService

import (
	"strings"
	"time"

	"PortfolioBackend/internal/api/journal"
	"PortfolioBackend/internal/entity"
)

const calendarSlots = 42

// buildCalendarMonth lays a month out on a fixed 42-slot grid, Sunday
// first. Slots before the month's first weekday and after its last day are
// blank; each real day carries its entry count and today/future flags.
func buildCalendarMonth(year int, month time.Month, entries []entity.JournalEntry, now time.Time) journal.CalendarMonthResponse {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leadingBlanks := int(first.Weekday())

	counts := make(map[int]int)
	for _, entry := range entries {
		created := entry.CreatedAt.In(time.Local)
		if created.Year() == year && created.Month() == month {
			counts[created.Day()]++
		}
	}

	today := 0
	if now.Year() == year && now.Month() == month {
		today = now.Day()
	}

	days := make([]journal.CalendarDay, 0, calendarSlots)
	for i := 0; i < leadingBlanks; i++ {
		days = append(days, journal.CalendarDay{Blank: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		days = append(days, journal.CalendarDay{
			Day:     day,
			Entries: counts[day],
			IsToday: day == today,
			Future:  date.After(now),
		})
	}

	for len(days) < calendarSlots {
		days = append(days, journal.CalendarDay{Blank: true})
	}

	return journal.CalendarMonthResponse{
		Year:  year,
		Month: int(month),
		Days:  days,
	}
}

// filterEntries narrows the list by a case-insensitive text query over
// title, content and tags, then by a selected day in YYYY-MM-DD form. Both
// filters are optional.
func filterEntries(entries []entity.JournalEntry, query, day string) []entity.JournalEntry {
	query = strings.ToLower(strings.TrimSpace(query))

	var selected time.Time
	filterDay := false
	if day != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", day, time.Local); err == nil {
			selected = parsed
			filterDay = true
		}
	}

	matched := make([]entity.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if query != "" && !entryMatches(entry, query) {
			continue
		}
		if filterDay && !sameDay(entry.CreatedAt.In(time.Local), selected) {
			continue
		}
		matched = append(matched, entry)
	}

	return matched
}

func entryMatches(entry entity.JournalEntry, query string) bool {
	if strings.Contains(strings.ToLower(entry.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Content), query) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
