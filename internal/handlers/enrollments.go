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

//go:generate mockgen -source=enrollments.go -destination=mock_enrollments_test.go -package=handlers

// Enroller enrolls the current user in a course.
type Enroller interface {
	Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
}

// EnrollmentLister lists the current user's enrollments.
type EnrollmentLister interface {
	List(ctx context.Context, userID int64) ([]models.EnrollmentWithCourse, error)
}

// Unenroller removes one of the current user's enrollments.
type Unenroller interface {
	Unenroll(ctx context.Context, userID, enrollmentID int64) error
}

// EnrollResponse represents a successful enrollment
// swagger:model EnrollResponse
type EnrollResponse struct {
	// Success message
	// default: Enrolled successfully
	Message    string             `json:"message"`
	Enrollment *models.Enrollment `json:"enrollment"`
}

// MessageResponse carries a confirmation message
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Unenrolled successfully
	Message string `json:"message"`
}

// NewEnrollHandler returns an HTTP handler enrolling the current user in a course.
// @Summary Enroll in course
// @Tags enrollments
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 201 {object} handlers.EnrollResponse "Enrolled"
// @Failure 400 {object} handlers.ErrorResponse "Already enrolled in this course"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Course not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to enroll"
// @Router /enrollments/{courseId} [post]
// @Security BearerAuth
func NewEnrollHandler(svc Enroller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		courseID, ok := pathID(r, "courseId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Course not found"})
			return
		}

		enrollment, err := svc.Enroll(r.Context(), userID, courseID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCourseNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Course not found"})
			case errors.Is(err, services.ErrAlreadyEnrolled):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Already enrolled in this course"})
			default:
				logger.Log.Errorw("failed to enroll", "user_id", userID, "course_id", courseID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to enroll"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(EnrollResponse{
			Message:    "Enrolled successfully",
			Enrollment: enrollment,
		})
	}
}

// NewListEnrollmentsHandler returns an HTTP handler listing the current user's enrollments.
// @Summary List my enrollments
// @Description Enrollments joined with course title, slug and image, newest first
// @Tags enrollments
// @Produce json
// @Success 200 {array} models.EnrollmentWithCourse "Enrollments"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch enrollments"
// @Router /enrollments [get]
// @Security BearerAuth
func NewListEnrollmentsHandler(svc EnrollmentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		enrollments, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to fetch enrollments", "user_id", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch enrollments"})
			return
		}
		if enrollments == nil {
			enrollments = []models.EnrollmentWithCourse{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(enrollments)
	}
}

// NewUnenrollHandler returns an HTTP handler deleting one of the current user's enrollments.
// @Summary Unenroll
// @Tags enrollments
// @Produce json
// @Param enrollmentId path int true "Enrollment ID"
// @Success 200 {object} handlers.MessageResponse "Unenrolled"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Enrollment belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Enrollment not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to unenroll"
// @Router /enrollments/{enrollmentId} [delete]
// @Security BearerAuth
func NewUnenrollHandler(svc Unenroller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		enrollmentID, ok := pathID(r, "enrollmentId")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Enrollment not found"})
			return
		}

		if err := svc.Unenroll(r.Context(), userID, enrollmentID); err != nil {
			switch {
			case errors.Is(err, services.ErrEnrollmentNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Enrollment not found"})
			case errors.Is(err, services.ErrNotEnrollmentOwner):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			default:
				logger.Log.Errorw("failed to unenroll", "user_id", userID, "enrollment_id", enrollmentID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to unenroll"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Unenrolled successfully"})
	}
}
