package runctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunID(t *testing.T) {
	ctx := context.Background()

	// Without a run ID the fallback is returned
	assert.Equal(t, "unknown", RunID(ctx))

	id := NewRunID()
	assert.NotEmpty(t, id)
	assert.NotEqual(t, id, NewRunID())

	ctx = WithRunID(ctx, id)
	assert.Equal(t, id, RunID(ctx))
}
