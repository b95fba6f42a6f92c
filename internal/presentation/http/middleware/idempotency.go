package middleware

import (
	"bytes"
	"time"

	"github.com/cratetracker/cratetracker-api/internal/domain/entity"
	"github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a previously seen
// Idempotency-Key instead of re-executing the request. The header is
// optional; requests without it proceed normally. Keys are scoped per
// endpoint so the same client key can be reused across resources.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			// No idempotency key provided, proceed normally
			c.Next()
			return
		}

		endpoint := c.Request.Method + " " + c.FullPath()

		existing, err := config.Repo.GetByKey(c.Request.Context(), idempotencyKey, endpoint)
		if err != nil {
			c.Next()
			return
		}

		// If key exists and not expired, return cached response
		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		// Capture the response
		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only store successful responses (2xx status codes)
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			ikey := &entity.IdempotencyKey{
				Key:          idempotencyKey,
				Endpoint:     endpoint,
				ResponseCode: c.Writer.Status(),
				ResponseBody: blw.body.String(),
				ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
			}

			_ = config.Repo.Create(c.Request.Context(), ikey)
		}
	}
}
