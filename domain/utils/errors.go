package utils

import (
	"errors"
	"net/http"
)

// APIError carries the HTTP status a failure maps to. Controllers never
// inspect messages, only the code.
type APIError struct {
	Code   int
	Detail string
}

func (e *APIError) Error() string { return e.Detail }

func Unauthenticated(detail string) error {
	return &APIError{Code: http.StatusUnauthorized, Detail: detail}
}

func Forbidden(detail string) error {
	return &APIError{Code: http.StatusForbidden, Detail: detail}
}

func NotFound(detail string) error {
	return &APIError{Code: http.StatusNotFound, Detail: detail}
}

func Conflict(detail string) error {
	return &APIError{Code: http.StatusConflict, Detail: detail}
}

func ValidationError(detail string) error {
	return &APIError{Code: http.StatusUnprocessableEntity, Detail: detail}
}

// HTTPStatus maps any error to a response status, unknown errors to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return http.StatusInternalServerError
}
