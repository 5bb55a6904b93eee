package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

var (
	// ErrUserAlreadyExists is returned when signing up with a known email.
	ErrUserAlreadyExists = errors.New("User already exists")
	// ErrUserNotFound is returned when no user matches the login email.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrMissingFields is returned when an order lacks a required field.
	ErrMissingFields = errors.New("Missing required fields")
	// ErrMissingToken is returned when a protected route has no bearer token.
	ErrMissingToken = errors.New("Access denied. No token provided.")
	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("Invalid token.")
)

// FieldViolation describes a single rejected field.
type FieldViolation struct {
	Field  string
	Reason string
}

// ValidationError reports rejected input for an entity.
type ValidationError struct {
	Entity     string
	Violations []FieldViolation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(entity, field, reason string) *ValidationError {
	return &ValidationError{
		Entity:     entity,
		Violations: []FieldViolation{{Field: field, Reason: reason}},
	}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Reason))
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(parts, ", "))
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// Echo converts the error into an echo error carrying the response body.
func (e *HTTPError) Echo() *echo.HTTPError {
	return echo.NewHTTPError(e.StatusCode, e.ToErrorResponse())
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown is a
// store failure and becomes a 500 with the generic fallback message.
func MapErrorToHTTP(err error, fallback string) *HTTPError {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidCredentials):
		// Unknown email and wrong password must look the same to callers.
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, unwrapSentinel(err).Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, fallback)
	}
}

func unwrapSentinel(err error) error {
	if errors.Is(err, ErrMissingToken) {
		return ErrMissingToken
	}
	return ErrInvalidToken
}

// HTTPErrorHandler renders every error leaving a handler as ErrorResponse.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := ErrorResponse{Error: "internal server error"}

	var he *echo.HTTPError
	var appErr *HTTPError
	switch {
	case errors.As(err, &appErr):
		code = appErr.StatusCode
		body = appErr.ToErrorResponse()
	case errors.As(err, &he):
		code = he.Code
		switch m := he.Message.(type) {
		case ErrorResponse:
			body = m
		case string:
			body = ErrorResponse{Error: m}
		case error:
			body = ErrorResponse{Error: m.Error()}
		default:
			body = ErrorResponse{Error: http.StatusText(code)}
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}
