package lock

import (
	"context"
	"sync"
	"time"
)

// LocalLocker is an in-process locker with expiring keys.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]localLease
	clock func() time.Time
}

type localLease struct {
	token     uint64
	expiresAt time.Time
}

// NewLocalLocker creates an empty LocalLocker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localLease),
		clock: time.Now,
	}
}

var localTokens struct {
	sync.Mutex
	next uint64
}

func nextLocalToken() uint64 {
	localTokens.Lock()
	defer localTokens.Unlock()
	localTokens.next++

	return localTokens.next
}

// TryLock acquires key unless another holder has a lease that has not expired.
func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (func(context.Context) error, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if lease, ok := l.held[key]; ok && now.Before(lease.expiresAt) {
		return nil, false, nil
	}

	token := nextLocalToken()
	l.held[key] = localLease{token: token, expiresAt: now.Add(ttl)}

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if lease, ok := l.held[key]; ok && lease.token == token {
			delete(l.held, key)
		}

		return nil
	}

	return release, true, nil
}
