package http

import (
	"net"
	"net/http"

	rl "github.com/warehousr/inventory-api/internal/http/rate_limiter"
)

var limiter rl.Limiter = rl.NewMemoryLimiter(20, 40)

// SetRateLimiter swaps the limiter used by the RateLimit middleware. Called
// once at startup, before the server accepts traffic.
func SetRateLimiter(l rl.Limiter) {
	limiter = l
}

// RateLimit throttles requests per client IP.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !limiter.Allow(r.Context(), ip) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
