package ratelimiter

import (
	"strings"
	"sync"
	"time"
)

// RatePolicy defines the rate limit configuration for a namespace
type RatePolicy struct {
	MaxAttempts int
	Window      time.Duration
}

// RateLimiter is an in-memory sliding window limiter. Attempts are tracked
// per namespace:key and each namespace carries its own policy.
//
//	rl := ratelimiter.NewRateLimiter()
//	rl.SetPolicy("signin", 5, 5*time.Minute)
//
//	if !rl.Allow("signin", username) {
//	    return http.StatusTooManyRequests
//	}
type RateLimiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	policies    map[string]RatePolicy
	now         func() time.Time
	stopCleanup chan struct{}
	stopped     bool
}

// NewRateLimiter creates a limiter and starts its cleanup goroutine. Call Stop when done.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		attempts:    make(map[string][]time.Time),
		policies:    make(map[string]RatePolicy),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	go rl.cleanupLoop(time.Minute)

	return rl
}

// SetPolicy configures the limit for a namespace
func (rl *RateLimiter) SetPolicy(namespace string, maxAttempts int, window time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.policies[namespace] = RatePolicy{
		MaxAttempts: maxAttempts,
		Window:      window,
	}
}

// Allow records an attempt and reports whether it is within the policy.
// Namespaces without a policy are denied.
func (rl *RateLimiter) Allow(namespace, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, exists := rl.policies[namespace]
	if !exists {
		return false
	}

	compositeKey := namespace + ":" + key
	valid := rl.recentLocked(compositeKey, policy)

	if len(valid) >= policy.MaxAttempts {
		rl.attempts[compositeKey] = valid
		return false
	}

	rl.attempts[compositeKey] = append(valid, rl.now())
	return true
}

// Reset clears the attempts of namespace:key, e.g. after a successful login
func (rl *RateLimiter) Reset(namespace, key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.attempts, namespace+":"+key)
}

// RetryAfter returns the whole seconds until the oldest attempt in the window
// expires, suitable for a Retry-After header. Zero when nothing is recorded.
func (rl *RateLimiter) RetryAfter(namespace, key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	policy, exists := rl.policies[namespace]
	if !exists {
		return 0
	}

	valid := rl.recentLocked(namespace+":"+key, policy)
	if len(valid) == 0 {
		return 0
	}

	remaining := valid[0].Add(policy.Window).Sub(rl.now())
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

// recentLocked returns the attempts still inside the window, oldest first
func (rl *RateLimiter) recentLocked(compositeKey string, policy RatePolicy) []time.Time {
	cutoff := rl.now().Add(-policy.Window)
	list := rl.attempts[compositeKey]
	valid := make([]time.Time, 0, len(list))
	for _, t := range list {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	return valid
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanup drops keys with no attempts left in their window
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for compositeKey := range rl.attempts {
		namespace, _, _ := strings.Cut(compositeKey, ":")
		policy, exists := rl.policies[namespace]
		if !exists || len(rl.recentLocked(compositeKey, policy)) == 0 {
			delete(rl.attempts, compositeKey)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if !rl.stopped {
		close(rl.stopCleanup)
		rl.stopped = true
	}
}
