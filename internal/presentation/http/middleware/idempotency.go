package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
)

const (
	// IdempotencyKeyHeader carries the client-chosen key. Registers on
	// flaky links retry with the same key so a duplicate never lands.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a stored key replays its response.
	IdempotencyKeyTTL = 24 * time.Hour
)

// IdempotencyConfig holds the storage backend for idempotency keys.
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
}

// responseWriter tees the response body so it can be stored for replay.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency deduplicates mutating requests that carry an idempotency
// key. Requests without a key pass through untouched.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, ok := contextUserID(c)
		if !ok {
			c.Next()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			c.Next()
			return
		}

		if existing != nil && !existing.IsExpired() {
			replayStored(c, existing)
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		storeKey(c, config, key, userID, blw)
	}
}

// IdempotencyRequired rejects POST requests without an idempotency key.
// Payment submission sits behind this so a register retry can never
// settle the same order twice.
func IdempotencyRequired(config IdempotencyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Idempotency-Key header is required for this request",
			})
			c.Abort()
			return
		}

		userID, ok := contextUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			c.Abort()
			return
		}

		existing, err := config.Repo.GetByKey(c.Request.Context(), key, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to check idempotency key",
			})
			c.Abort()
			return
		}

		if existing != nil && !existing.IsExpired() {
			replayStored(c, existing)
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only successful responses replay; a failed submission may be
		// retried with the same key
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			storeKey(c, config, key, userID, blw)
		}
	}
}

func contextUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}

func replayStored(c *gin.Context, existing *entity.IdempotencyKey) {
	c.Header("X-Idempotency-Replayed", "true")

	var cached map[string]interface{}
	if err := json.Unmarshal([]byte(existing.ResponseBody), &cached); err == nil {
		c.JSON(existing.ResponseCode, cached)
	} else {
		c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
	}
	c.Abort()
}

func storeKey(c *gin.Context, config IdempotencyConfig, key string, userID uuid.UUID, blw *responseWriter) {
	ikey := &entity.IdempotencyKey{
		Key:          key,
		UserID:       userID,
		Endpoint:     c.Request.Method + " " + c.FullPath(),
		ResponseCode: c.Writer.Status(),
		ResponseBody: blw.body.String(),
		ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
	}

	_ = config.Repo.Create(c.Request.Context(), ikey)
}
