package lambda

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method          string            `json:"method"`
	Path            string            `json:"path"`
	Headers         map[string]string `json:"headers"`
	QueryParams     map[string]string `json:"query_params"`
	Body            []byte            `json:"body"`
	IsBase64Encoded bool              `json:"is_base64_encoded"`
	RequestID       string            `json:"request_id"`
}

// DecodedBody returns the request body as text, base64-decoding it first
// when the gateway flagged it as encoded
func (r *Request) DecodedBody() ([]byte, error) {
	if !r.IsBase64Encoded {
		return r.Body, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(string(r.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 body: %w", err)
	}
	return decoded, nil
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)
