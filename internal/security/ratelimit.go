// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package security

import (
	"sync"
	"time"
)

// window tracks one client's request count inside the current fixed window.
type window struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window per-client rate limiter. The first request from
// a client opens a window; every request inside it increments the count;
// the request that would exceed max is rejected together with the time
// remaining until the window resets. An expired window is replaced lazily
// on the client's next request.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*window

	max     int
	period  time.Duration
	now     func() time.Time
	lastGC  time.Time
}

// NewLimiter returns a limiter allowing max requests per period for each
// distinct client key.
func NewLimiter(max int, period time.Duration) *Limiter {
	return &Limiter{
		clients: make(map[string]*window),
		max:     max,
		period:  period,
		now:     time.Now,
	}
}

// Allow reports whether one more request from key fits into its current
// window. When it does not, the returned duration is the time until the
// window resets, rounded up to whole seconds for the Retry-After header.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybeGC(now)

	w, ok := l.clients[key]
	if !ok || !now.Before(w.resetAt) {
		l.clients[key] = &window{count: 1, resetAt: now.Add(l.period)}
		return true, 0
	}

	if w.count >= l.max {
		retryAfter := w.resetAt.Sub(now)
		if rem := retryAfter % time.Second; rem != 0 {
			retryAfter += time.Second - rem
		}
		return false, retryAfter
	}

	w.count++
	return true, 0
}

// maybeGC drops expired windows so the client map does not grow without
// bound under address churn. Runs at most once per period; caller holds
// the mutex.
func (l *Limiter) maybeGC(now time.Time) {
	if now.Sub(l.lastGC) < l.period {
		return
	}
	l.lastGC = now
	for key, w := range l.clients {
		if !now.Before(w.resetAt) {
			delete(l.clients, key)
		}
	}
}
