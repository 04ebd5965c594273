// Package apperrors defines the error taxonomy shared by services and
// handlers: every expected failure carries an HTTP status and a user-facing
// message, and anything else is treated as internal.
package apperrors

import (
	"errors"
	"net/http"
)

// Error is an expected, user-facing failure.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Validation(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(http.StatusConflict, message) }

// StatusOf returns the HTTP status for err, defaulting to 500 for errors
// that are not an *Error anywhere in their chain.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for err. Internal errors get the
// fallback so that storage details never leak to clients.
func MessageOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return fallback
}
