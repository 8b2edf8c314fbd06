package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repository repository.IdempotencyRepository
	TTL        time.Duration
}

// responseWriter captures the response body so it can be cached for replay
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency returns a middleware that replays cached responses for
// repeated writes carrying the same Idempotency-Key header.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	if config.TTL == 0 {
		config.TTL = 24 * time.Hour
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		userIDValue, exists := c.Get("user_id")
		if !exists {
			c.Next()
			return
		}
		userID, ok := userIDValue.(uuid.UUID)
		if !ok {
			c.Next()
			return
		}

		existing, err := config.Repository.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotency lookup failed")
			c.Next()
			return
		}

		if existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			record := &entity.IdempotencyKey{
				Key:          key,
				UserID:       userID,
				Endpoint:     c.Request.URL.Path,
				ResponseCode: status,
				ResponseBody: writer.body.String(),
				ExpiresAt:    time.Now().Add(config.TTL),
			}
			if err := config.Repository.Create(c.Request.Context(), record); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to store idempotency record")
			}
		}
	}
}
