package pricing

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// runAsync is swapped for a synchronous runner in tests.
var runAsync = safeAsync

// safeAsync runs fn in a goroutine with its own deadline, detached from the
// request context, and logs the outcome.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}
