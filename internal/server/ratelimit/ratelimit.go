// Package ratelimit provides per-client rate limiting on top of golang.org/x/time/rate.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled           bool
	RequestsPerMinute int
	Burst             int
	// CleanupInterval is how often idle clients are dropped. Zero disables the sweeper.
	CleanupInterval time.Duration
	// IdleTimeout is how long a client may stay silent before its bucket is dropped.
	IdleTimeout time.Duration
	Whitelist   map[string]bool
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client.
type Limiter struct {
	config Config
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*client

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter and, when configured, starts the idle sweeper.
func NewLimiter(config Config) *Limiter {
	if config.Burst <= 0 {
		config.Burst = config.RequestsPerMinute
	}
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = time.Hour
	}

	l := &Limiter{
		config:  config,
		now:     time.Now,
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go l.sweep(config.CleanupInterval)
	}
	return l
}

// Allow consumes one token for clientID on the given route.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.RequestsPerMinute <= 0 || Exempt(path, method) || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}

	now := l.now()
	lim := l.clientLimiter(clientID, now)

	info := Info{Limit: l.config.RequestsPerMinute}
	if lim.AllowN(now, 1) {
		info.Allowed = true
		info.Remaining = int(lim.TokensAt(now))
		return true, info
	}

	// Reserve to learn the wait, then hand the token back.
	r := lim.ReserveN(now, 1)
	if r.OK() {
		info.RetryAfter = r.DelayFrom(now)
		r.CancelAt(now)
	}
	return false, info
}

func (l *Limiter) clientLimiter(clientID string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[clientID]
	if !ok {
		every := rate.Every(time.Minute / time.Duration(l.config.RequestsPerMinute))
		c = &client{limiter: rate.NewLimiter(every, l.config.Burst)}
		l.clients[clientID] = c
	}
	c.lastSeen = now
	return c.limiter
}

// Clients returns the number of tracked clients.
func (l *Limiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle()
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops clients not seen within IdleTimeout.
func (l *Limiter) evictIdle() {
	cutoff := l.now().Add(-l.config.IdleTimeout)

	l.mu.Lock()
	defer l.mu.Unlock()
	for id, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, id)
		}
	}
}

// Stop stops the sweeper goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
