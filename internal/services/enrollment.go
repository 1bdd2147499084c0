package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/models"
	"github.com/sbilibin2017/course-platform/internal/repositories"
)

//go:generate mockgen -source=enrollment.go -destination=mock_enrollment_test.go -package=services

var (
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrNotEnrollmentOwner is returned when a user touches someone else's enrollment.
	ErrNotEnrollmentOwner = errors.New("enrollment belongs to another user")
)

// EnrollmentReader defines read operations for enrollments.
type EnrollmentReader interface {
	GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.EnrollmentWithCourse, error)
}

// EnrollmentWriter defines write operations for enrollments.
type EnrollmentWriter interface {
	Save(ctx context.Context, userID, courseID int64, status models.EnrollmentStatus) (*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}

// EnrollmentService manages a user's course enrollments.
type EnrollmentService struct {
	courses CourseReader
	reader  EnrollmentReader
	writer  EnrollmentWriter
	events  EventPublisher
}

// NewEnrollmentService creates an EnrollmentService. events may be nil.
func NewEnrollmentService(courses CourseReader, reader EnrollmentReader, writer EnrollmentWriter, events EventPublisher) *EnrollmentService {
	return &EnrollmentService{
		courses: courses,
		reader:  reader,
		writer:  writer,
		events:  events,
	}
}

// Enroll creates an active enrollment of userID in courseID.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to check course exists", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	existing, err := s.reader.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		logger.Log.Errorw("failed to check enrollment exists", "user_id", userID, "course_id", courseID, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment, err := s.writer.Save(ctx, userID, courseID, models.EnrollmentStatusActive)
	switch {
	case errors.Is(err, repositories.ErrUniqueViolation):
		return nil, ErrAlreadyEnrolled
	case errors.Is(err, repositories.ErrForeignKeyViolation):
		return nil, ErrCourseNotFound
	case err != nil:
		logger.Log.Errorw("failed to save enrollment", "user_id", userID, "course_id", courseID, "error", err)
		return nil, err
	}

	publish(ctx, s.events, models.EventEnrollmentCreated, enrollment.ID, userID)
	return enrollment, nil
}

// List returns userID's enrollments with course details, newest first.
func (s *EnrollmentService) List(ctx context.Context, userID int64) ([]models.EnrollmentWithCourse, error) {
	enrollments, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list enrollments", "user_id", userID, "error", err)
		return nil, err
	}
	return enrollments, nil
}

// Unenroll deletes the enrollment after checking that userID owns it.
func (s *EnrollmentService) Unenroll(ctx context.Context, userID, enrollmentID int64) error {
	enrollment, err := s.reader.GetByID(ctx, enrollmentID)
	if err != nil {
		logger.Log.Errorw("failed to get enrollment", "enrollment_id", enrollmentID, "error", err)
		return err
	}
	if enrollment == nil {
		return ErrEnrollmentNotFound
	}
	if enrollment.UserID != userID {
		logger.Log.Warnw("unenroll rejected", "enrollment_id", enrollmentID, "user_id", userID, "owner_id", enrollment.UserID)
		return ErrNotEnrollmentOwner
	}

	if err := s.writer.Delete(ctx, enrollmentID); err != nil {
		logger.Log.Errorw("failed to delete enrollment", "enrollment_id", enrollmentID, "error", err)
		return err
	}

	publish(ctx, s.events, models.EventEnrollmentDeleted, enrollmentID, userID)
	return nil
}
