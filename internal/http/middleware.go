package http

import (
	"net"
	"net/http"

	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
)

// RateLimitMiddleware rejects requests exceeding the per-client budget.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetClient(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
