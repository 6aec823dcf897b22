package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notes-api/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Invalid log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestInvocationLogger(t *testing.T) {
	tests := []struct {
		name   string
		resp   *lambda.Response
		err    error
		level  string
		status any
	}{
		{"success", &lambda.Response{StatusCode: 200}, nil, "info", float64(200)},
		{"client error", &lambda.Response{StatusCode: 400}, nil, "warning", float64(400)},
		{"not found", &lambda.Response{StatusCode: 404}, nil, "warning", float64(404)},
		{"fault", nil, errors.New("boom"), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger()
			next := func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
				return tt.resp, tt.err
			}

			req := &lambda.Request{Method: "GET", Path: "/notes", RequestID: "req-1"}
			resp, err := InvocationLogger(logger, next)(context.Background(), req)
			if resp != tt.resp || err != tt.err {
				t.Fatalf("Expected wrapped handler results to pass through, got %v, %v", resp, err)
			}

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("Expected exactly one log line, got %d", len(entries))
			}
			entry := entries[0]

			if entry["level"] != tt.level {
				t.Errorf("Expected level %s, got %v", tt.level, entry["level"])
			}
			if entry["request_id"] != "req-1" {
				t.Errorf("Expected request_id req-1, got %v", entry["request_id"])
			}
			if entry["method"] != "GET" || entry["path"] != "/notes" {
				t.Errorf("Expected method and path fields, got %v %v", entry["method"], entry["path"])
			}
			if entry["status_code"] != tt.status {
				t.Errorf("Expected status_code %v, got %v", tt.status, entry["status_code"])
			}
			if _, ok := entry["latency_ms"]; !ok {
				t.Error("Expected latency_ms field")
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || w.Body.String() != generated {
		t.Errorf("Expected generated request id in header and context, got %q and %q", generated, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	engine.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "client-id" {
		t.Errorf("Expected client request id to be kept, got %q", w.Header().Get(RequestIDHeader))
	}
}

func assertCORSHeaders(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	for key, value := range CORSHeaders() {
		if got := w.Header().Get(key); got != value {
			t.Errorf("Expected header %s=%q, got %q", key, value, got)
		}
	}
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, _ := newTestLogger()

	engine := gin.New()
	engine.Use(RateLimiter(logger, 0.001, 2))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		engine.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, last.Code)
	}

	expected := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range expected {
		if codes[i] != expected[i] {
			t.Errorf("Request %d: expected status %d, got %d", i, expected[i], codes[i])
		}
	}
	assertCORSHeaders(t, last)
}

func TestRateLimiterDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, _ := newTestLogger()

	engine := gin.New()
	engine.Use(RateLimiter(logger, 0, 0))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected no limiting, got status %d on request %d", w.Code, i)
		}
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, buf := newTestLogger()

	engine := gin.New()
	engine.Use(ErrorHandler(logger))
	engine.GET("/fault", func(c *gin.Context) {
		c.Error(errors.New("store unavailable"))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fault", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != `{"message":"Internal Server Error"}` {
		t.Errorf("Expected gateway style error body, got %s", w.Body.String())
	}
	assertCORSHeaders(t, w)
	if !strings.Contains(buf.String(), "store unavailable") {
		t.Error("Expected the fault to be logged")
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, buf := newTestLogger()

	engine := gin.New()
	engine.Use(Recovery(logger))
	engine.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	assertCORSHeaders(t, w)
	if !strings.Contains(buf.String(), "Recovered from panic") {
		t.Error("Expected the panic to be logged")
	}
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(SecurityHeaders())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("Expected nosniff header, got %q", w.Header().Get("X-Content-Type-Options"))
	}
}
