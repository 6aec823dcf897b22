package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RateLimitResponse is returned when the local server sheds load
type RateLimitResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// RateLimiter implements rate limiting middleware. A non-positive rate
// disables limiting.
func RateLimiter(logger *logrus.Logger, requestsPerSecond float64, burstSize int) gin.HandlerFunc {
	if requestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burstSize < 1 {
		burstSize = 1
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"client_ip":  c.ClientIP(),
				"path":       c.Request.URL.Path,
			}).Warn("Rate limit exceeded")

			writeCORSHeaders(c)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, RateLimitResponse{
				Error:     "Rate limit exceeded",
				Message:   fmt.Sprintf("Too many requests. Limit: %.1f requests per second", requestsPerSecond),
				RequestID: c.GetString(RequestIDKey),
				Timestamp: time.Now().Format(time.RFC3339),
			})
			return
		}
		c.Next()
	}
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Next()
	}
}
