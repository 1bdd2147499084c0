package models

import "time"

// Course is a catalogue entry users can enroll in.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Description *string   `json:"description" db:"description"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewCourse holds the fields accepted when creating a course.
type NewCourse struct {
	Title       string
	Slug        string
	Description *string
	ImageURL    *string
}
