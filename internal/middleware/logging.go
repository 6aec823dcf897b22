package middleware

import (
	"context"
	"time"

	"notes-api/pkg/lambda"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestIDKey is the key used to store request ID in context
const RequestIDKey = "request_id"

// RequestIDHeader carries the request ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging with request context
func StructuredLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"request_id":    c.GetString(RequestIDKey),
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status_code":   c.Writer.Status(),
			"latency_ms":    float64(time.Since(start).Nanoseconds()) / 1000000,
			"client_ip":     c.ClientIP(),
			"response_size": c.Writer.Size(),
		}
		if raw := c.Request.URL.RawQuery; raw != "" {
			fields["query"] = raw
		}

		logStatus(logger.WithFields(fields), c.Writer.Status(), nil)
	}
}

// InvocationLogger wraps a serverless handler so every invocation emits one
// structured line. Faults are logged and passed through unchanged.
func InvocationLogger(logger *logrus.Logger, next lambda.HandlerFunc) lambda.HandlerFunc {
	return func(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
		start := time.Now()
		resp, err := next(ctx, req)

		fields := logrus.Fields{
			"request_id": req.RequestID,
			"method":     req.Method,
			"path":       req.Path,
			"latency_ms": float64(time.Since(start).Nanoseconds()) / 1000000,
		}

		status := 0
		if resp != nil {
			status = resp.StatusCode
			fields["status_code"] = status
		}

		logStatus(logger.WithFields(fields), status, err)
		return resp, err
	}
}

func logStatus(entry *logrus.Entry, status int, err error) {
	switch {
	case err != nil:
		entry.WithError(err).Error("Invocation failed")
	case status >= 500:
		entry.Error("Server error")
	case status >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request completed")
	}
}
