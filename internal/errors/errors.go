package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmptyField is returned when a required field is empty.
	ErrEmptyField = errors.New("field cannot be empty")
	// ErrLettersOnly is returned when a name field contains anything but letters and hyphens.
	ErrLettersOnly = errors.New("field should contain only letters")
	// ErrWeakPassword is returned when a password fails the complexity policy.
	ErrWeakPassword = errors.New("the password is too simple")
	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrUnauthenticated is returned when a bearer token cannot be resolved to a user.
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrTaskNotFound is returned when a task lookup misses within the owner's scope.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already taken")
	// ErrStorageUnavailable is returned when the database cannot be reached.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Is reports whether any error in err's chain matches target. Re-exported so
// callers of this package do not need a second errors import for chain checks.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmptyField):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_FIELD")
	case errors.Is(err, ErrLettersOnly):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "LETTERS_ONLY")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrStorageUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error(), "STORAGE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
