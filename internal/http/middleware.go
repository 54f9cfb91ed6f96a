package http

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/rogerio-castellano/resto-dashboard/internal/ratelimit"
)

var resetLimiters = ratelimit.NewKeyed(rate.Every(time.Second), 5)

// RateLimitMiddleware throttles per client IP. Applied to the reset
// endpoints so the mail path cannot be hammered.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !resetLimiters.Allow(ip) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StartVisitorCleanupLoop evicts idle per-IP limiters. Run as a goroutine.
func StartVisitorCleanupLoop() {
	resetLimiters.CleanupLoop(5 * time.Minute)
}

// CleanupAllVisitors resets limiter state between tests.
func CleanupAllVisitors() {
	resetLimiters.Reset()
}
