package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/baharkarakas/txn-intake/internal/api/httpx"
)

// Limiter decides whether one more request for key fits the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit answers 429 once l refuses a client. Limiter errors let the
// request through.
func RateLimit(l Limiter) func(http.Handler) http.Handler {
	if l == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := l.Allow(r.Context(), clientKey(r))
			if err != nil {
				slog.Warn("rate limiter unavailable", "err", err, "request_id", RequestIDFrom(r.Context()))
				allowed = true
			}
			if !allowed {
				httpx.WriteMessage(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// maxTrackedClients bounds the per-client map; idle clients are swept when
// it fills up.
const maxTrackedClients = 10000

type bucket struct {
	tokens int
	last   time.Time
}

// TokenBucket is an in-process limiter with one bucket per client key.
type TokenBucket struct {
	mu      sync.Mutex
	rate    int
	buckets map[string]*bucket
}

// NewTokenBucket returns nil when rps is not positive, which disables
// limiting.
func NewTokenBucket(rps int) *TokenBucket {
	if rps <= 0 {
		return nil
	}
	return &TokenBucket{rate: rps, buckets: make(map[string]*bucket)}
}

func (tb *TokenBucket) Allow(_ context.Context, key string) (bool, error) {
	if tb == nil {
		return true, nil
	}
	tb.mu.Lock()
	defer tb.mu.Unlock()
	now := time.Now()
	b, ok := tb.buckets[key]
	if !ok {
		if len(tb.buckets) >= maxTrackedClients {
			tb.sweep(now)
		}
		b = &bucket{tokens: tb.rate, last: now}
		tb.buckets[key] = b
	}
	if refill := int(now.Sub(b.last).Seconds() * float64(tb.rate)); refill > 0 {
		b.tokens = min(b.tokens+refill, tb.rate)
		b.last = now
	}
	if b.tokens <= 0 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

// sweep drops buckets that would be full again by now.
func (tb *TokenBucket) sweep(now time.Time) {
	for k, b := range tb.buckets {
		if now.Sub(b.last) >= time.Second {
			delete(tb.buckets, k)
		}
	}
}
