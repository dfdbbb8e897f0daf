package entity

import "time"

type ContactMessage struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Project   string    `db:"project" json:"project"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
