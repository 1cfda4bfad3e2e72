package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/haca/placement/internal/app/models"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := NewStudentCache(nil, time.Minute, zerolog.Nop())
	ctx := context.Background()

	if _, ok := c.GetApproved(ctx); ok {
		t.Fatal("expected a miss from a disabled cache")
	}

	// Writes and invalidation must not panic without a client
	c.SetApproved(ctx, []*models.Student{{ID: 1, Name: "Jane"}})
	c.Invalidate(ctx)

	if _, ok := c.GetApproved(ctx); ok {
		t.Fatal("disabled cache must never report a hit")
	}
}
