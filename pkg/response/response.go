package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The webhook wire contract is deliberately plain: accepted events and
// routing misses answer with an empty body, failures carry the diagnostic
// as text so the sender's delivery log shows what went wrong.

// Accepted sends a 200 response with an empty body.
func Accepted(c *gin.Context) {
	c.Status(http.StatusOK)
}

// NotFound sends a 404 response with an empty body. The header is flushed
// immediately: inside a NoRoute handler gin would otherwise treat the
// response as unwritten and append its default "404 page not found" body.
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
	c.Writer.WriteHeaderNow()
}

// InternalText sends a 500 response with the diagnostic as plain text.
func InternalText(c *gin.Context, msg string) {
	c.String(http.StatusInternalServerError, msg)
}
