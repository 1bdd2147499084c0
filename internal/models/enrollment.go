package models

import "time"

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

// EnrollmentStatusActive is the only state ever stored; unenrolling deletes the row.
const EnrollmentStatusActive EnrollmentStatus = "active"

// Enrollment links a user to a course.
type Enrollment struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"user_id" db:"user_id"`
	CourseID  int64            `json:"course_id" db:"course_id"`
	Status    EnrollmentStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// EnrollmentWithCourse is an enrollment joined with the course it refers to.
type EnrollmentWithCourse struct {
	Enrollment
	Title    string  `json:"title" db:"title"`
	Slug     string  `json:"slug" db:"slug"`
	ImageURL *string `json:"image_url" db:"image_url"`
}
