// Package ratelimit implements the fixed-window request counter that
// gates the AI chat endpoints.
//
// The window is a hard cutover: the counter resets exactly at the
// window boundary, so a client can burst up to twice the nominal rate
// across a boundary. That imprecision is accepted; this is not a
// sliding or leaky algorithm.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type record struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per client key within a fixed window. State
// lives in process memory only and is never persisted.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*record
	limit   int
	window  time.Duration
	now     func() time.Time
}

// New creates a Limiter allowing limit requests per window per key.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		records: make(map[string]*record),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow records one request for the key and reports whether it is
// within the window's budget. The check-and-increment happens under
// one lock so racing requests from the same key never lose updates.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[key]
	if !ok || !now.Before(rec.resetAt) {
		l.records[key] = &record{count: 1, resetAt: now.Add(l.window)}
		return true
	}

	if rec.count < l.limit {
		rec.count++
		return true
	}
	return false
}

// Sweep drops records whose window has already ended. Without it the
// map grows with every distinct client ever seen.
func (l *Limiter) Sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, rec := range l.records {
		if !now.Before(rec.resetAt) {
			delete(l.records, key)
		}
	}
}

// StartJanitor sweeps expired records periodically until the context
// is cancelled.
func (l *Limiter) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Sweep()
			}
		}
	}()
}

// Len reports how many keys currently have a record.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
