package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Keyed hands out one token-bucket limiter per key (an IP, an email) and
// forgets keys that go idle.
type Keyed struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

func NewKeyed(limit rate.Limit, burst int) *Keyed {
	return &Keyed{
		clients: make(map[string]*client),
		limit:   limit,
		burst:   burst,
	}
}

// Allow reports whether key may proceed right now.
func (k *Keyed) Allow(key string) bool {
	return k.Get(key).Allow()
}

// Get returns the limiter for key, creating it on first sight.
func (k *Keyed) Get(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	c, exists := k.clients[key]
	if !exists {
		c = &client{limiter: rate.NewLimiter(k.limit, k.burst), lastSeen: time.Now()}
		k.clients[key] = c
		return c.limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

// CleanupLoop evicts keys idle longer than idle. Run as a goroutine.
func (k *Keyed) CleanupLoop(idle time.Duration) {
	for {
		time.Sleep(time.Minute)
		k.mu.Lock()
		for key, c := range k.clients {
			if time.Since(c.lastSeen) > idle {
				delete(k.clients, key)
			}
		}
		k.mu.Unlock()
	}
}

// Reset drops all limiter state.
func (k *Keyed) Reset() {
	k.mu.Lock()
	k.clients = make(map[string]*client)
	k.mu.Unlock()
}
