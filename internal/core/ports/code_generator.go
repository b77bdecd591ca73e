package ports

import (
	"context"
	"time"
)

// OrderCodeGenerator produces the human-legible sequential order codes shown
// to customers ("20260829-14-003"). Counters are sharded per day and hour so
// concurrent shops never contend on a single row for long.
type OrderCodeGenerator interface {
	// Next returns the next code for the given moment. Implementations fall
	// back to a timestamp-derived code when the counter is unavailable, so
	// order creation never fails on code generation.
	Next(ctx context.Context, now time.Time) (string, error)
}
