package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations so the ledger can be tested with pinned clocks
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
