package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader carries the client's key for checkout and walk-in submissions
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 128

// GetIdempotencyKey returns the trimmed Idempotency-Key header.
// Oversized keys are cut to a bounded length.
func GetIdempotencyKey(c *gin.Context) string {
	key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
	if len(key) > maxIdempotencyKeyLength {
		key = key[:maxIdempotencyKeyLength]
	}
	return key
}
