package middleware

import "github.com/gin-gonic/gin"

// Response headers sent with every reply, including errors and preflights
const (
	HeaderContentType  = "Content-Type"
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowMethods = "Access-Control-Allow-Methods"

	ContentTypeJSON = "application/json"
	AllowedMethods  = "GET,POST,DELETE,OPTIONS"
)

// CORSHeaders returns a fresh copy of the headers every response carries
func CORSHeaders() map[string]string {
	return map[string]string{
		HeaderContentType:  ContentTypeJSON,
		HeaderAllowOrigin:  "*",
		HeaderAllowHeaders: "*",
		HeaderAllowMethods: AllowedMethods,
	}
}

// writeCORSHeaders stamps the shared headers on responses written here
// rather than by the router
func writeCORSHeaders(c *gin.Context) {
	for key, value := range CORSHeaders() {
		c.Header(key, value)
	}
}
