package handlers

import (
	"encoding/json"
	"fmt"

	"notes-api/internal/middleware"
	"notes-api/pkg/lambda"
)

// DefaultHeaders returns a fresh copy of the headers every response carries
func DefaultHeaders() map[string]string {
	return middleware.CORSHeaders()
}

// Encode is the single place a Result becomes a wire response
func Encode(result Result) (*lambda.Response, error) {
	body, err := json.Marshal(Normalize(result.Payload))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s response: %w", result.Kind, err)
	}

	return &lambda.Response{
		StatusCode: result.Status,
		Headers:    DefaultHeaders(),
		Body:       body,
	}, nil
}
