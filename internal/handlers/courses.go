package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/models"
	"github.com/sbilibin2017/course-platform/internal/services"
)

//go:generate mockgen -source=courses.go -destination=mock_courses_test.go -package=handlers

// CourseLister lists the course catalogue.
type CourseLister interface {
	List(ctx context.Context) ([]models.Course, error)
}

// CourseGetter fetches a single course.
type CourseGetter interface {
	Get(ctx context.Context, id int64) (*models.Course, error)
}

// CourseCreator creates courses.
type CourseCreator interface {
	Create(ctx context.Context, userID int64, c models.NewCourse) (*models.Course, error)
}

// CreateCourseRequest represents the JSON body for course creation
// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	// Title
	// required: true
	// default: Go for backend developers
	Title string `json:"title" validate:"required"`

	// Slug, not required to be unique
	// required: true
	// default: go-backend
	Slug string `json:"slug" validate:"required"`

	// Optional description
	Description *string `json:"description"`

	// Optional cover image
	ImageURL *string `json:"image_url"`
}

// NewListCoursesHandler returns an HTTP handler listing all courses.
// @Summary List courses
// @Description Returns all courses, newest first
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "Courses"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch courses"
// @Router /courses [get]
func NewListCoursesHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to fetch courses", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch courses"})
			return
		}
		if courses == nil {
			courses = []models.Course{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(courses)
	}
}

// NewGetCourseHandler returns an HTTP handler for a single course.
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course "Course"
// @Failure 404 {object} handlers.ErrorResponse "Course not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch course"
// @Router /courses/{id} [get]
func NewGetCourseHandler(svc CourseGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Course not found"})
			return
		}

		course, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Course not found"})
			default:
				logger.Log.Errorw("failed to fetch course", "course_id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch course"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(course)
	}
}

// NewCreateCourseHandler returns an HTTP handler creating a course.
// @Summary Create course
// @Description Any authenticated user may create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param createCourseRequest body handlers.CreateCourseRequest true "Course"
// @Success 201 {object} models.Course "Created course"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to create course"
// @Router /courses [post]
// @Security BearerAuth
func NewCreateCourseHandler(svc CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		var req CreateCourseRequest
		if !decodeBody(w, r, &req) {
			return
		}

		course, err := svc.Create(r.Context(), userID, models.NewCourse{
			Title:       req.Title,
			Slug:        req.Slug,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			logger.Log.Errorw("failed to create course", "user_id", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to create course"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(course)
	}
}
