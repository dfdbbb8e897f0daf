package entity

import "time"

type JournalEntry struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Content      string    `db:"content" json:"content"`
	Mood         string    `db:"mood" json:"mood"`
	Tags         []string  `db:"-" json:"tags"`
	UserID       string    `db:"user_id" json:"userId"`
	NotionPageID string    `db:"notion_page_id" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
