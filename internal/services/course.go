package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/models"
)

//go:generate mockgen -source=course.go -destination=mock_course_test.go -package=services

// ErrCourseNotFound is returned when no course has the requested id.
var ErrCourseNotFound = errors.New("course not found")

const courseListCacheKey = "courses:list"

func courseCacheKey(id int64) string {
	return fmt.Sprintf("courses:%d", id)
}

// CourseReader defines read operations for courses.
type CourseReader interface {
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// CourseWriter defines write operations for courses.
type CourseWriter interface {
	Save(ctx context.Context, c models.NewCourse) (*models.Course, error)
}

// CourseService lists, reads and creates courses.
type CourseService struct {
	reader CourseReader
	writer CourseWriter
	cache  Cache
	events EventPublisher
}

// NewCourseService creates a CourseService. cache and events may be nil.
func NewCourseService(reader CourseReader, writer CourseWriter, cache Cache, events EventPublisher) *CourseService {
	return &CourseService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// List returns all courses, newest first.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if cacheGet(ctx, s.cache, courseListCacheKey, &courses) {
		return courses, nil
	}

	courses, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list courses", "error", err)
		return nil, err
	}

	cacheSet(ctx, s.cache, courseListCacheKey, courses)
	return courses, nil
}

// Get returns the course with the given id.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	var cached models.Course
	if cacheGet(ctx, s.cache, courseCacheKey(id), &cached) {
		return &cached, nil
	}

	course, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", id, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	cacheSet(ctx, s.cache, courseCacheKey(id), course)
	return course, nil
}

// Create stores a new course on behalf of userID. Slugs are not required to be unique.
func (s *CourseService) Create(ctx context.Context, userID int64, c models.NewCourse) (*models.Course, error) {
	course, err := s.writer.Save(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to create course", "user_id", userID, "error", err)
		return nil, err
	}

	cacheDelete(ctx, s.cache, courseListCacheKey)
	publish(ctx, s.events, models.EventCourseCreated, course.ID, userID)
	return course, nil
}
