package source

import (
	"sync"
	"time"
)

// Gate suppresses duplicate triggers of the same event kind within a fixed
// interval. The space server occasionally delivers the same join or exit
// twice in quick succession; only the first acquisition within the interval
// succeeds. The gate is keyed on the monotonic clock, so it is safe under
// concurrent dispatch.
type Gate struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	until    map[string]time.Time
}

// NewGate constructs a Gate with the given suppression interval.
func NewGate(interval time.Duration) *Gate {
	return &Gate{
		interval: interval,
		now:      time.Now,
		until:    make(map[string]time.Time),
	}
}

// TryAcquire reports whether an event of the given kind may be processed.
// A successful acquisition suppresses further events of that kind until the
// interval elapses.
func (g *Gate) TryAcquire(kind string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if until, ok := g.until[kind]; ok && now.Before(until) {
		return false
	}
	g.until[kind] = now.Add(g.interval)
	return true
}
