package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients = make(map[string]*clientLimiter)
	mu      sync.Mutex

	requestsPerSecond rate.Limit = 10
	burst                        = 20
)

// Configure sets the per-client budget. Call before serving traffic.
func Configure(perSecond float64, burstSize int) {
	mu.Lock()
	defer mu.Unlock()
	requestsPerSecond = rate.Limit(perSecond)
	burst = burstSize
	clients = make(map[string]*clientLimiter)
}

// GetClient returns the limiter for one remote address, creating it on
// first sight.
func GetClient(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	c, exists := clients[ip]
	if !exists {
		limiter := rate.NewLimiter(requestsPerSecond, burst)
		clients[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

// StartClientCleanupLoop drops limiters for addresses idle longer than five
// minutes. Run it in its own goroutine.
func StartClientCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, c := range clients {
			if time.Since(c.lastSeen) > 5*time.Minute {
				delete(clients, ip)
			}
		}
		mu.Unlock()
	}
}

// CleanupAllClients resets the limiter table.
func CleanupAllClients() {
	mu.Lock()
	defer mu.Unlock()
	clients = make(map[string]*clientLimiter)
}
