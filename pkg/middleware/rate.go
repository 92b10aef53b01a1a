package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/josbet/floreria/pkg/response"
)

// window tracks a fixed-window request count for one client.
type window struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (w *window) allow(max int, span time.Duration) (ok bool, retryAfter time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if now.After(w.resetAt) {
		w.count = 0
		w.resetAt = now.Add(span)
	}

	w.count++
	if w.count <= max {
		return true, 0
	}
	return false, time.Until(w.resetAt)
}

// limiter owns the per-client windows and evicts expired ones.
type limiter struct {
	mu      sync.Mutex
	clients map[string]*window
}

func newLimiter() *limiter {
	l := &limiter{clients: map[string]*window{}}
	go l.evictLoop()
	return l
}

func (l *limiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		for key, w := range l.clients {
			w.mu.Lock()
			expired := now.After(w.resetAt)
			w.mu.Unlock()
			if expired {
				delete(l.clients, key)
			}
		}
		l.mu.Unlock()
	}
}

func (l *limiter) get(key string) *window {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w, ok := l.clients[key]; ok {
		return w
	}
	w := &window{resetAt: time.Now().Add(time.Minute)}
	l.clients[key] = w
	return w
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit limits each client IP to max requests per span. Each call
// gets its own limiter, so the login form and the API can carry
// different budgets.
func RateLimit(max int, span time.Duration) func(http.Handler) http.Handler {
	l := newLimiter()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retryAfter := l.get(clientIP(r)).allow(max, span)
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
				response.Error(w, http.StatusTooManyRequests, "Too Many Requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
