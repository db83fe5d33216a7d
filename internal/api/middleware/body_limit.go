package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasanthsingh/QuickPass/pkg/response"
)

// BodyLimit caps the request body at maxBytes. The import endpoint needs
// headroom for workbooks, so the cap is applied globally at a size that
// comfortably fits them.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
				return
			}
		}
	}
}
