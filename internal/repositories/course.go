package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/course-platform/internal/models"
)

const courseColumns = `id, title, slug, description, image_url, created_at`

// CourseReadRepository handles course read operations
type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// List returns all courses, newest first.
func (r *CourseReadRepository) List(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC, id DESC`

	courses := []models.Course{}
	err := r.db.SelectContext(ctx, &courses, query)

	logQuery(query, nil, len(courses), err)

	if err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByID returns the course with the given id, or nil.
func (r *CourseReadRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	var course models.Course
	err := r.db.GetContext(ctx, &course, query, id)

	logQuery(query, []any{id}, course.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// CourseWriteRepository handles course write operations
type CourseWriteRepository struct {
	db *sqlx.DB
}

func NewCourseWriteRepository(db *sqlx.DB) *CourseWriteRepository {
	return &CourseWriteRepository{db: db}
}

// Save inserts a course and returns the stored row.
func (r *CourseWriteRepository) Save(ctx context.Context, c models.NewCourse) (*models.Course, error) {
	const query = `
		INSERT INTO courses (title, slug, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + courseColumns

	args := []any{c.Title, c.Slug, c.Description, c.ImageURL}

	var course models.Course
	err := r.db.GetContext(ctx, &course, query, args...)

	logQuery(query, args, course.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &course, nil
}
