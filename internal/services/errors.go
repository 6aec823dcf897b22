package services

import "errors"

// Validation failures reported back to the caller as 400s. The messages
// are returned verbatim in the response body.
var (
	ErrTextRequired   = errors.New("text is required")
	ErrNoteIDRequired = errors.New("noteId required")
)

// ErrMalformedBody marks a create body that could not be decoded. It is
// not a validation error: it surfaces as an execution fault.
var ErrMalformedBody = errors.New("malformed request body")

// IsValidationError reports whether err should be answered with a 400
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTextRequired) || errors.Is(err, ErrNoteIDRequired)
}
