package journal

import "PortfolioBackend/internal/entity"

type CreateEntryRequest struct {
	Title   string   `json:"title" validate:"required,min=1,max=256"`
	Content string   `json:"content" validate:"required"`
	Mood    string   `json:"mood" validate:"omitempty,max=64"`
	Tags    []string `json:"tags" validate:"omitempty,dive,max=64"`
}

type UpdateEntryRequest struct {
	Title   string   `json:"title" validate:"omitempty,min=1,max=256"`
	Content string   `json:"content" validate:"omitempty"`
	Mood    string   `json:"mood" validate:"omitempty,max=64"`
	Tags    []string `json:"tags" validate:"omitempty,dive,max=64"`
}

type EntryResponse struct {
	Entry      entity.JournalEntry `json:"entry"`
	NotionSync string              `json:"notionSync"`
}

type EntryListResponse struct {
	Entries []entity.JournalEntry `json:"entries"`
	Total   int                   `json:"total"`
}

// CalendarDay is one of the 42 slots of a month view. Blank slots pad the
// grid before the first day and after the last.
type CalendarDay struct {
	Day     int  `json:"day"`
	Blank   bool `json:"blank"`
	Entries int  `json:"entries"`
	IsToday bool `json:"isToday"`
	Future  bool `json:"future"`
}

type CalendarMonthResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}
