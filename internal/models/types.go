package models

// Common constants
const (
	// NoteIDPrefix is prepended to every generated note identifier
	NoteIDPrefix = "n_"

	// NoteIDHexLength is the number of lowercase hex characters after the prefix
	NoteIDHexLength = 16

	// DefaultListLimit caps how many items a single scan may return
	DefaultListLimit = 25
)

// ValidationError represents a validation error with field details
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.Message
}
