package content

import "PortfolioBackend/internal/entity"

type CreateSkillRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=128"`
	Category string `json:"category" validate:"required,min=1,max=64"`
}

type UpdateSkillRequest struct {
	Name     string `json:"name" validate:"omitempty,min=1,max=128"`
	Category string `json:"category" validate:"omitempty,min=1,max=64"`
}

type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=256"`
	Subtitle    string `json:"subtitle" validate:"omitempty,max=256"`
	Category    string `json:"category" validate:"omitempty,max=64"`
	Description string `json:"description" validate:"omitempty"`
	Color       string `json:"color" validate:"omitempty,max=32"`
}

type UpdateProjectRequest struct {
	Title       string `json:"title" validate:"omitempty,min=1,max=256"`
	Subtitle    string `json:"subtitle" validate:"omitempty,max=256"`
	Category    string `json:"category" validate:"omitempty,max=64"`
	Description string `json:"description" validate:"omitempty"`
	Color       string `json:"color" validate:"omitempty,max=32"`
}

type CreateBlogRequest struct {
	Title         string   `json:"title" validate:"required,min=3,max=256"`
	Excerpt       string   `json:"excerpt" validate:"omitempty,max=512"`
	Content       string   `json:"content" validate:"required"`
	Date          string   `json:"date" validate:"omitempty"`
	ReadTime      string   `json:"readTime" validate:"omitempty,max=32"`
	Slug          string   `json:"slug" validate:"omitempty,max=256"`
	Category      string   `json:"category" validate:"omitempty,max=64"`
	Tags          []string `json:"tags" validate:"omitempty,dive,max=64"`
	IsPublished   *bool    `json:"isPublished" validate:"omitempty"`
	ScheduledDate string   `json:"scheduledDate" validate:"omitempty"`
}

type UpdateBlogRequest struct {
	Title         string   `json:"title" validate:"omitempty,min=3,max=256"`
	Excerpt       string   `json:"excerpt" validate:"omitempty,max=512"`
	Content       string   `json:"content" validate:"omitempty"`
	Date          string   `json:"date" validate:"omitempty"`
	ReadTime      string   `json:"readTime" validate:"omitempty,max=32"`
	Slug          string   `json:"slug" validate:"omitempty,max=256"`
	Category      string   `json:"category" validate:"omitempty,max=64"`
	Tags          []string `json:"tags" validate:"omitempty,dive,max=64"`
	IsPublished   *bool    `json:"isPublished" validate:"omitempty"`
	ScheduledDate *string  `json:"scheduledDate" validate:"omitempty"`
}

type CreateTestimonialRequest struct {
	Text   string `json:"text" validate:"required"`
	Author string `json:"author" validate:"required,min=1,max=128"`
	Role   string `json:"role" validate:"omitempty,max=128"`
}

type UpdateTestimonialRequest struct {
	Text   string `json:"text" validate:"omitempty"`
	Author string `json:"author" validate:"omitempty,min=1,max=128"`
	Role   string `json:"role" validate:"omitempty,max=128"`
}

type CreateCommentRequest struct {
	User string `json:"user" validate:"required,min=1,max=128"`
	Text string `json:"text" validate:"required,min=1,max=2048"`
}

type SnapshotResponse struct {
	Skills       []entity.Skill       `json:"skills"`
	Projects     []entity.Project     `json:"projects"`
	Blogs        []entity.Blog        `json:"blogs"`
	Testimonials []entity.Testimonial `json:"testimonials"`
	Loading      bool                 `json:"loading"`
}

type BlogListResponse struct {
	Blogs []entity.Blog `json:"blogs"`
	Total int           `json:"total"`
}

type LikesResponse struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}
