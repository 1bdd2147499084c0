package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/course-platform/internal/middlewares"
)

// ErrorResponse is the body of every non-validation error.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// FieldError describes one rejected request field.
// swagger:model FieldError
type FieldError struct {
	// JSON name of the field
	// default: email
	Field string `json:"field"`

	// Human readable reason
	// default: must be a valid email
	Message string `json:"message"`

	// Where the field was read from
	// default: body
	Location string `json:"location"`
}

// ValidationErrorResponse is returned with 400 when a request body fails validation.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody decodes and validates the JSON body into dst. On failure it
// writes the 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return false
		}

		resp := ValidationErrorResponse{Errors: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, FieldError{
				Field:    fe.Field(),
				Message:  fieldErrorMessage(fe),
				Location: "body",
			})
		}
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(resp)
		return false
	}
	return true
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return "Invalid value"
	}
}

// pathID parses a numeric chi URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requireUserID returns the authenticated user id or writes 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}
	return userID, true
}
