package backend

import (
	"fmt"
	"net/http"
)

// RequestError describes a failed backend call.
// Status 0 = network/connection error, >0 = HTTP response received
type RequestError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// UserMessage returns a message suitable for display to the end user.
func (e *RequestError) UserMessage() string {
	switch e.Status {
	case 0:
		return "Unable to connect. Please check your internet connection and try again."
	case http.StatusUnauthorized:
		return "Your session is no longer valid. Please log in again."
	case http.StatusForbidden:
		return "You don't have permission to access this resource."
	case http.StatusBadRequest:
		return "Invalid request. Please check your input and try again."
	case http.StatusNotFound:
		return "The requested data could not be found."
	case http.StatusTooManyRequests:
		return "Too many requests. Please try again in a few moments."
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return "The service is temporarily unavailable. Please try again later."
	default:
		return "An error occurred. Please try again."
	}
}

// Result is the envelope returned by every backend data call.
// Exactly one branch is populated: OK=true means Data is set, OK=false means
// Err is set. Callers must check OK before reading Data.
type Result[T any] struct {
	OK   bool
	Data T
	Err  *RequestError
}

func success[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func failure[T any](err *RequestError) Result[T] {
	return Result[T]{OK: false, Err: err}
}
