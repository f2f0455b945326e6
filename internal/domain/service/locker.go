package service

import (
	"context"
	"time"
)

// Locker provides best-effort distributed mutual exclusion.
type Locker interface {
	// TryLock acquires key for ttl. It returns ok=false without error when the key is held elsewhere.
	// The returned release function is safe to call once the work is done.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}
