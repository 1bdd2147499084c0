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

//go:generate mockgen -source=me.go -destination=mock_me_test.go -package=handlers

// Profiler returns the profile of the authenticated user.
type Profiler interface {
	Me(ctx context.Context, userID int64) (*models.User, error)
}

// NewMeHandler returns an HTTP handler for the current user's profile.
// @Summary Current user
// @Description Returns the profile of the user identified by the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch user"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.Me(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to fetch user", "user_id", userID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch user"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
