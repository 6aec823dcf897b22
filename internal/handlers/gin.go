package handlers

import (
	"fmt"
	"io"
	"net/http"

	"notes-api/internal/middleware"
	"notes-api/pkg/lambda"

	"github.com/gin-gonic/gin"
)

// GinHandler serves the router through gin for local development. Faults
// are attached to the context for the error middleware to answer.
func (r *Router) GinHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := RequestFromHTTP(c.Request)
		if err != nil {
			c.Error(err)
			return
		}
		req.RequestID = c.GetString(middleware.RequestIDKey)

		resp, err := r.Route(c.Request.Context(), req)
		if err != nil {
			c.Error(err)
			return
		}

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, resp.Headers[middleware.HeaderContentType], resp.Body)
	}
}

// RequestFromHTTP builds a Request from a plain HTTP request
func RequestFromHTTP(r *http.Request) (*lambda.Request, error) {
	req := &lambda.Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		Headers:     make(map[string]string, len(r.Header)),
		QueryParams: make(map[string]string),
	}
	if req.Path == "" {
		req.Path = "/"
	}

	for k := range r.Header {
		req.Headers[k] = r.Header.Get(k)
	}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			req.QueryParams[k] = v[0]
		}
	}

	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		if len(body) > 0 {
			req.Body = body
		}
	}

	return req, nil
}
