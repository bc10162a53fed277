package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// ContextRequestID is the key the request uuid is stored under in the Gin context.
	ContextRequestID = "requestID"

	// HeaderRequestID carries the request uuid back to the client.
	HeaderRequestID = "X-Request-ID"
)

// RequestID returns the uuid assigned to the request, or a fresh one when the
// request did not pass through RequestLogger.
func RequestID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextRequestID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.New()
}

// RequestLogger assigns every request a uuid and logs it once it completes.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New()
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id.String())

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}

		event.
			Str("request_id", id.String()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}
