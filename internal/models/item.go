package models

import (
	"fmt"
	"strconv"
)

// Item is a note document as the store returns it. Attributes are kept as
// decoded by the backend, so numbers may still be in the store's native
// decimal representation.
type Item map[string]any

// decimal is satisfied by json.Number and the DynamoDB attribute Number type.
type decimal interface {
	Float64() (float64, error)
}

// NoteID returns the item's noteId attribute, or "" if absent
func (i Item) NoteID() string {
	if id, ok := i["noteId"].(string); ok {
		return id
	}
	return ""
}

// CreatedAt returns the item's createdAt attribute as a sort key.
// Missing or non-numeric values sort as 0.
func (i Item) CreatedAt() float64 {
	return NumericValue(i["createdAt"])
}

// NumericValue converts a decoded store value into a float64, returning 0
// for anything that is not a number.
func NumericValue(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	case decimal:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case fmt.Stringer:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
