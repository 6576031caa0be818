package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"base-util/pkg/httputil"
)

const ContextKeyRequestID = "request_id"

// RequestID tags each request with an X-Request-ID and propagates it to
// outbound calls made with the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(httputil.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Header(httputil.HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(httputil.ContextWithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}
