package handlers

import (
	"net/http"

	"notes-api/internal/models"
)

// ResultKind tags the outcome of a routed operation
type ResultKind int

const (
	// ResultOK is a successful operation carrying a body
	ResultOK ResultKind = iota
	// ResultValidationError is a rejected input, answered with 400
	ResultValidationError
	// ResultNotFound is an unrouted method/path combination
	ResultNotFound
)

// String returns the kind name used in logs
func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultValidationError:
		return "validation_error"
	case ResultNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result is what every operation returns; Encode turns it into a response
type Result struct {
	Kind    ResultKind
	Status  int
	Payload any
}

// AckBody acknowledges a CORS preflight
type AckBody struct {
	OK bool `json:"ok"`
}

// ListBody wraps the listed items
type ListBody struct {
	Items []models.Item `json:"items"`
}

// DeletedBody echoes the deleted id
type DeletedBody struct {
	Deleted string `json:"deleted"`
}

// ErrorResponse represents a validation error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// NotFoundResponse echoes the unrouted request
type NotFoundResponse struct {
	Error  string `json:"error"`
	Method string `json:"method"`
	Path   string `json:"path"`
}

// OK builds a successful result
func OK(status int, payload any) Result {
	return Result{Kind: ResultOK, Status: status, Payload: payload}
}

// ValidationFailed builds a 400 result with message as the error
func ValidationFailed(message string) Result {
	return Result{
		Kind:    ResultValidationError,
		Status:  http.StatusBadRequest,
		Payload: ErrorResponse{Error: message},
	}
}

// NotFound builds a 404 result echoing method and path
func NotFound(method, path string) Result {
	return Result{
		Kind:   ResultNotFound,
		Status: http.StatusNotFound,
		Payload: NotFoundResponse{
			Error:  "Not Found",
			Method: method,
			Path:   path,
		},
	}
}
