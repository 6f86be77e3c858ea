// Package trace assigns each inbound HTTP request a random ID and
// carries it through the request context for logging.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Context keys stay unexported so callers go through the helpers.
type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// GenerateID returns a random hex ID for request tracing.
func GenerateID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Timestamp fallback keeps tracing usable if rand fails.
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return hex.EncodeToString(b[:])
}

// WithRequestID stores the request ID in a new context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext reads the request ID back, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
