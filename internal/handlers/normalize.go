package handlers

import (
	"encoding/json"
	"math/big"

	"notes-api/internal/models"
)

// decimal is a number still in the store's string-backed representation.
// json.Number and the DynamoDB attribute Number type both satisfy it.
type decimal interface {
	Float64() (float64, error)
	String() string
}

// Normalize rewrites store-native decimals anywhere in an outgoing payload:
// values with no fractional part become integer literals, everything else
// becomes a float64. Other values pass through untouched.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case decimal:
		return normalizeDecimal(x)
	case ListBody:
		return ListBody{Items: normalizeItems(x.Items)}
	case *ListBody:
		if x == nil {
			return x
		}
		return &ListBody{Items: normalizeItems(x.Items)}
	case []models.Item:
		return normalizeItems(x)
	case models.Item:
		return models.Item(normalizeMap(x))
	case map[string]any:
		return normalizeMap(x)
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = Normalize(elem)
		}
		return out
	default:
		return v
	}
}

func normalizeItems(items []models.Item) []models.Item {
	if items == nil {
		return []models.Item{}
	}
	out := make([]models.Item, len(items))
	for i, item := range items {
		out[i] = models.Item(normalizeMap(item))
	}
	return out
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Normalize(v)
	}
	return out
}

// normalizeDecimal keeps integers exact at any magnitude by emitting them
// as a json.Number literal.
func normalizeDecimal(d decimal) any {
	r, ok := new(big.Rat).SetString(d.String())
	if !ok {
		f, err := d.Float64()
		if err != nil {
			return d.String()
		}
		return f
	}
	if r.IsInt() {
		return json.Number(r.Num().String())
	}
	f, _ := r.Float64()
	return f
}
