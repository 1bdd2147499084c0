package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/models"
	"github.com/sbilibin2017/course-platform/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register_test.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, fullName, email, phone, password string) (*models.RegisteredUser, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name
	// required: true
	// default: Ada Lovelace
	FullName string `json:"full_name" validate:"required"`

	// Email
	// required: true
	// default: ada@example.com
	Email string `json:"email" validate:"required,email"`

	// Phone
	// required: true
	// default: +10000000000
	Phone string `json:"phone" validate:"required"`

	// Password, 6 to 72 characters
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string                 `json:"message"`
	User    *models.RegisteredUser `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an unverified user account. Email and phone must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation failed"
// @Failure 400 {object} handlers.ErrorResponse "User already exists"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Registration failed"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), req.FullName, req.Email, req.Phone, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "User already exists",
				})
			case errors.Is(err, services.ErrPasswordTooLong):
				// multi-byte passwords can pass the character limit and still exceed it in bytes
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ValidationErrorResponse{Errors: []FieldError{{
					Field:    "password",
					Message:  fmt.Sprintf("must be at most %d bytes long", services.MaxPasswordBytes),
					Location: "body",
				}}})
			default:
				logger.Log.Errorw("registration failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Registration failed",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "User registered successfully",
			User:    user,
		})
	}
}
