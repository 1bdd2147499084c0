package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/course-platform/internal/models"
)

const enrollmentColumns = `id, user_id, course_id, status, created_at`

// EnrollmentReadRepository handles enrollment read operations.
// Reads run inside the request transaction when one is present.
type EnrollmentReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEnrollmentReadRepository(db *sqlx.DB, txGetter TxGetter) *EnrollmentReadRepository {
	return &EnrollmentReadRepository{db: db, txGetter: txGetter}
}

// GetByUserAndCourse returns the user's enrollment in the course, or nil.
func (r *EnrollmentReadRepository) GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	const query = `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE user_id = $1 AND course_id = $2`
	return r.getOne(ctx, query, userID, courseID)
}

// GetByID returns the enrollment with the given id, or nil.
func (r *EnrollmentReadRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	const query = `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *EnrollmentReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &enrollment, query, args...)

	logQuery(query, args, enrollment.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ListByUserID returns the user's enrollments joined with course details, newest first.
func (r *EnrollmentReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.EnrollmentWithCourse, error) {
	const query = `
		SELECT e.id, e.user_id, e.course_id, e.status, e.created_at,
		       c.title, c.slug, c.image_url
		FROM enrollments e
		JOIN courses c ON e.course_id = c.id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC, e.id DESC
	`

	enrollments := []models.EnrollmentWithCourse{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &enrollments, query, userID)

	logQuery(query, []any{userID}, len(enrollments), err)

	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// EnrollmentWriteRepository handles enrollment write operations
type EnrollmentWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEnrollmentWriteRepository(db *sqlx.DB, txGetter TxGetter) *EnrollmentWriteRepository {
	return &EnrollmentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an enrollment. A second enrollment for the same user and
// course fails with ErrUniqueViolation.
func (r *EnrollmentWriteRepository) Save(ctx context.Context, userID, courseID int64, status models.EnrollmentStatus) (*models.Enrollment, error) {
	const query = `
		INSERT INTO enrollments (user_id, course_id, status)
		VALUES ($1, $2, $3)
		RETURNING ` + enrollmentColumns

	args := []any{userID, courseID, status}

	var enrollment models.Enrollment
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &enrollment, query, args...)

	logQuery(query, args, enrollment.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &enrollment, nil
}

// Delete removes the enrollment row.
func (r *EnrollmentWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM enrollments WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	return err
}
