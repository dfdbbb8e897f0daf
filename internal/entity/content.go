package entity

import "time"

type Skill struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Project struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Subtitle    string    `db:"subtitle" json:"subtitle"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Color       string    `db:"color" json:"color"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Blog is the in-memory shape of a post. The store columns read_time,
// featured_image, is_published and scheduled_date translate to the camelCase
// fields here; the translation lives in the content repository and must
// round-trip unchanged.
type Blog struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Excerpt       string    `db:"excerpt" json:"excerpt"`
	Content       string    `db:"content" json:"content"`
	Date          string    `db:"date" json:"date"`
	ReadTime      string    `db:"read_time" json:"readTime"`
	Slug          string    `db:"slug" json:"slug"`
	Category      string    `db:"category" json:"category,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	FeaturedImage string    `db:"featured_image" json:"featuredImage,omitempty"`
	IsPublished   bool      `db:"is_published" json:"isPublished"`
	ScheduledDate string    `db:"scheduled_date" json:"scheduledDate,omitempty"`
	Likes         int       `db:"likes" json:"likes"`
	Comments      []Comment `json:"comments"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Comment crosses the change feed as-is, so it carries json tags alongside
// the db tags.
type Comment struct {
	ID        string    `db:"id" json:"id"`
	BlogID    string    `db:"blog_id" json:"blogId"`
	User      string    `db:"user_name" json:"user"`
	Text      string    `db:"text" json:"text"`
	Date      string    `db:"date" json:"date"`
	Hidden    bool      `db:"hidden" json:"hidden"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Testimonial struct {
	ID        string    `db:"id" json:"id"`
	Text      string    `db:"text" json:"text"`
	Author    string    `db:"author" json:"author"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
