package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is the error taxonomy surfaced to callers. Storage-library
// errors are translated into one of these at the service boundary so handlers
// never see gorm internals. Sentinels below compare with errors.Is by code.
type ServiceError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of the sentinel carrying the underlying cause.
func (e *ServiceError) Wrap(err error) *ServiceError {
	return &ServiceError{Code: e.Code, Status: e.Status, Message: e.Message, Err: err}
}

var (
	ErrIngredientConflict = &ServiceError{Code: "INGREDIENT_CONFLICT", Status: http.StatusConflict, Message: "ingredient already exists"}
	ErrIngredientNotFound = &ServiceError{Code: "INGREDIENT_NOT_FOUND", Status: http.StatusNotFound, Message: "ingredient does not exist"}

	ErrCategoryNotFound       = &ServiceError{Code: "CATEGORY_NOT_FOUND", Status: http.StatusNotFound, Message: "no category entry for that ingredient"}
	ErrDuplicateCategory      = &ServiceError{Code: "DUPLICATE_CATEGORY", Status: http.StatusBadRequest, Message: "a shelf life is already registered for that ingredient"}
	ErrInvalidCategoryNesting = &ServiceError{Code: "INVALID_CATEGORY_NESTING", Status: http.StatusBadRequest, Message: "a child category requires a parent category"}

	ErrAdminPermission = &ServiceError{Code: "NO_ADMIN_PERMISSION", Status: http.StatusForbidden, Message: "admin privileges required"}

	ErrUnauthorized       = &ServiceError{Code: "UNAUTHORIZED", Status: http.StatusUnauthorized, Message: "missing or invalid credentials"}
	ErrTokenExpired       = &ServiceError{Code: "TOKEN_EXPIRED", Status: http.StatusUnauthorized, Message: "access token expired or invalid"}
	ErrInvalidCredentials = &ServiceError{Code: "INVALID_CREDENTIALS", Status: http.StatusUnauthorized, Message: "wrong email or password"}
	ErrUserNotFound       = &ServiceError{Code: "USER_NOT_FOUND", Status: http.StatusNotFound, Message: "user does not exist"}
	ErrDuplicateEmail     = &ServiceError{Code: "DUPLICATE_EMAIL", Status: http.StatusBadRequest, Message: "email already registered"}
	ErrDuplicateNickname  = &ServiceError{Code: "DUPLICATE_NICKNAME", Status: http.StatusBadRequest, Message: "nickname already taken"}

	ErrDatabaseConflict = &ServiceError{Code: "DB_CONFLICT", Status: http.StatusConflict, Message: "storage constraint violated"}
	ErrDatabase         = &ServiceError{Code: "DB_ERROR", Status: http.StatusInternalServerError, Message: "database failure"}
	ErrExternal         = &ServiceError{Code: "EXTERNAL_ERROR", Status: http.StatusBadGateway, Message: "external service failure"}
	ErrUnexpected       = &ServiceError{Code: "UNEXPECTED", Status: http.StatusInternalServerError, Message: "unexpected failure"}
)

// AsServiceError extracts the taxonomy entry from an error chain, falling
// back to ErrUnexpected so every error maps to a status and code.
func AsServiceError(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return ErrUnexpected.Wrap(err)
}
