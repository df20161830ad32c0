package security

import (
	"sync"
	"time"
)

// LoginLimiter tracks failed login attempts per source IP over a sliding
// window. Pruning happens lazily on check and record; there is no
// background sweep.
type LoginLimiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	window      time.Duration
	maxAttempts int
	now         func() time.Time
}

func NewLoginLimiter(maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		attempts:    make(map[string][]time.Time),
		window:      window,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// RecordFailure appends a failure timestamp for ip, pruning entries that
// have aged out of the window.
func (l *LoginLimiter) RecordFailure(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts[ip] = append(l.prune(ip), l.now())
}

// IsLimited reports whether ip has reached the attempt threshold within
// the current window.
func (l *LoginLimiter) IsLimited(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.prune(ip)
	if len(kept) == 0 {
		delete(l.attempts, ip)
	} else {
		l.attempts[ip] = kept
	}
	return len(kept) >= l.maxAttempts
}

// Clear drops the failure history for ip. Called after a successful login
// so a regained-trust source is not penalized by old failures.
func (l *LoginLimiter) Clear(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, ip)
}

func (l *LoginLimiter) prune(ip string) []time.Time {
	windowStart := l.now().Add(-l.window)
	kept := l.attempts[ip][:0]
	for _, ts := range l.attempts[ip] {
		if !ts.Before(windowStart) {
			kept = append(kept, ts)
		}
	}
	return kept
}
