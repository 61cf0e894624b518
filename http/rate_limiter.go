package http

import (
	"sync"
	"time"
)

type clientWindow struct {
	remaining int
	resetAt   time.Time
	lastSeen  time.Time
}

// RateLimiter enforces a fixed-window request limit per client IP.
// Windows idle for longer than idleAfter are dropped by a background
// sweep so the client map cannot grow without bound.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	idleAfter time.Duration
	clients   map[string]*clientWindow
	stopSweep chan struct{}
}

func NewRateLimiter(limit int, window, idleAfter time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:     limit,
		window:    window,
		idleAfter: idleAfter,
		clients:   make(map[string]*clientWindow),
		stopSweep: make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(r.idleAfter)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(time.Now())
		case <-r.stopSweep:
			return
		}
	}
}

func (r *RateLimiter) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for ip, win := range r.clients {
		if now.Sub(win.lastSeen) > r.idleAfter {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopSweep)
}

// Allow reports whether a request from ip fits in its current window.
// An expired window is replaced rather than refilled, so a client
// returning after a pause starts with a fresh allowance.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	win, exists := r.clients[ip]

	if !exists || now.After(win.resetAt) {
		r.clients[ip] = &clientWindow{
			remaining: r.limit - 1,
			resetAt:   now.Add(r.window),
			lastSeen:  now,
		}
		return true
	}

	win.lastSeen = now
	if win.remaining <= 0 {
		return false
	}
	win.remaining--
	return true
}
