package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InternalErrorBody is returned when an invocation faults, matching what
// API Gateway sends when a Lambda integration fails
var InternalErrorBody = gin.H{"message": "Internal Server Error"}

// ErrorHandler middleware turns handler faults into a 500 response
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		}).Error("Request error")

		if !c.Writer.Written() {
			writeCORSHeaders(c)
			c.JSON(http.StatusInternalServerError, InternalErrorBody)
		}
	}
}

// Recovery converts panics into the same 500 response as a fault
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Recovered from panic")
		writeCORSHeaders(c)
		c.AbortWithStatusJSON(http.StatusInternalServerError, InternalErrorBody)
	})
}
