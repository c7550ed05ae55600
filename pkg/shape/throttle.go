// pkg/shape/throttle.go
package shape

import (
	"sync"
	"time"
)

// DisturbThrottle limits how often an input source may translate pointer
// movement into engine wake calls. Token bucket per source id; sources are
// few and long-lived (a pointer, a scripted disturber), so there is no
// background cleanup.
type DisturbThrottle struct {
	maxCalls int
	window   time.Duration
	sources  map[string]*sourceBucket
	mu       sync.Mutex
}

// sourceBucket tracks throttle state for a single input source
type sourceBucket struct {
	tokens     int
	lastRefill time.Time
}

// NewDisturbThrottle creates a throttle allowing maxCalls per window
// for each source.
func NewDisturbThrottle(maxCalls int, window time.Duration) *DisturbThrottle {
	return &DisturbThrottle{
		maxCalls: maxCalls,
		window:   window,
		sources:  make(map[string]*sourceBucket),
	}
}

// Allow reports whether the given source may issue a disturb call now.
func (t *DisturbThrottle) Allow(sourceID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	bucket, exists := t.sources[sourceID]
	if !exists {
		bucket = &sourceBucket{tokens: t.maxCalls, lastRefill: now}
		t.sources[sourceID] = bucket
	}

	elapsed := now.Sub(bucket.lastRefill)
	if elapsed > 0 && bucket.tokens < t.maxCalls {
		refill := int(float64(t.maxCalls) * float64(elapsed) / float64(t.window))
		if refill > 0 {
			bucket.tokens += refill
			if bucket.tokens > t.maxCalls {
				bucket.tokens = t.maxCalls
			}
			bucket.lastRefill = now
		}
	}

	if bucket.tokens > 0 {
		bucket.tokens--
		return true
	}
	return false
}
