package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter enforces a token budget per minute, for APIs that meter usage
// by token count rather than request count.
type TokenLimiter struct {
	mu          sync.Mutex
	maxPerMin   int
	remaining   int
	windowStart time.Time
}

// NewTokenLimiter creates a limiter with the given tokens-per-minute budget.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		maxPerMin:   maxPerMinute,
		remaining:   maxPerMinute,
		windowStart: time.Now(),
	}
}

// GetRemaining returns the tokens left in the current window.
func (l *TokenLimiter) GetRemaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	return l.remaining
}

// Wait blocks until n tokens are available or the context is canceled.
func (l *TokenLimiter) Wait(ctx context.Context, n int) error {
	if n > l.maxPerMin {
		n = l.maxPerMin
	}
	for {
		l.mu.Lock()
		l.refill()
		if l.remaining >= n {
			l.remaining -= n
			l.mu.Unlock()
			return nil
		}
		wait := time.Until(l.windowStart.Add(time.Minute))
		l.mu.Unlock()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *TokenLimiter) refill() {
	if time.Since(l.windowStart) >= time.Minute {
		l.remaining = l.maxPerMin
		l.windowStart = time.Now()
	}
}
