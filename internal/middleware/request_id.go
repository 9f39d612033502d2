package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id for log correlation. A caller
// supplied id is kept so the frontend can trace its own submissions.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
