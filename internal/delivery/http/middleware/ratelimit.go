package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	h "communityhub/internal/delivery/http/helpers"

	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL         = 15 * time.Minute
	limiterCleanupInterval = 5 * time.Minute
)

// RateLimiter hands out a token-bucket limiter per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	every    time.Duration
	burst    int
	now      func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perMinute requests per client per minute, with a burst of perMinute.
// A non-positive perMinute disables limiting.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		burst:    perMinute,
		now:      time.Now,
	}
	if perMinute > 0 {
		rl.every = time.Minute / time.Duration(perMinute)
	}
	return rl
}

// Limit wraps next, rejecting over-limit clients with 429 and a Retry-After header.
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rl.burst <= 0 {
			next(w, r)
			return
		}
		res := rl.limiter(clientIP(r)).ReserveN(rl.now(), 1)
		if delay := res.DelayFrom(rl.now()); delay > 0 {
			res.CancelAt(rl.now())
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			h.WriteJSONError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next(w, r)
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if e, ok := rl.limiters[key]; ok {
		e.lastSeen = rl.now()
		return e.limiter
	}
	l := rate.NewLimiter(rate.Every(rl.every), rl.burst)
	rl.limiters[key] = &limiterEntry{limiter: l, lastSeen: rl.now()}
	return l
}

// Cleanup drops limiters idle for longer than the idle TTL and returns how many were removed.
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	n := 0
	cutoff := rl.now().Add(-limiterIdleTTL)
	for key, e := range rl.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
			n++
		}
	}
	return n
}

// RunCleanup calls Cleanup periodically until ctx is done.
func (rl *RateLimiter) RunCleanup(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
