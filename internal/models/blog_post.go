package models

import "time"

// BlogPost is a published article addressed by its slug.
type BlogPost struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Slug      string    `json:"slug" db:"slug"`
	Summary   *string   `json:"summary" db:"summary"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewBlogPost holds the fields accepted when creating a post.
type NewBlogPost struct {
	Title    string
	Slug     string
	Summary  *string
	Content  string
	ImageURL *string
}
