// Package runctx internal/infrastructure/runctx/runctx.go
package runctx

import (
	"context"

	"github.com/google/uuid"
)

// Keys for context values
type contextKey string

const (
	runIDKey contextKey = "run_id"
)

// NewRunID generates a unique identifier for a single CLI invocation
func NewRunID() string {
	return uuid.New().String()
}

// WithRunID returns a context carrying the run ID
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunID retrieves the run ID from the context
func RunID(ctx context.Context) string {
	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		return runID
	}
	return "unknown"
}
