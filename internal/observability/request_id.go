package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header name for request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the local key under which the request ID is stored.
	RequestIDKey = "request_id"
)

// RequestID tags each request with a unique ID. A client-supplied
// X-Request-ID header is used when present, otherwise a fresh UUID is
// generated. The ID is echoed back in the response headers.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDHeader, requestID)
		return c.Next()
	}
}
