package status

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Counter names shared by the simulation and render goroutines
const (
	SimTicks        = "sim.ticks"
	FramesSent      = "pipeline.sent"
	PipelinePeak    = "pipeline.peak"
	FramesRendered  = "render.frames"
	CellsWritten    = "render.cells"
	FullRedraws     = "render.full"
	ViewportResizes = "sim.resizes"
)

// Registry is a set of named counters
// Registration uses a mutex; writers cache the pointer and update lock-free
type Registry struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*atomic.Int64),
	}
}

// Int returns the counter for key, creating it if absent
func (r *Registry) Int(key string) *atomic.Int64 {
	// Fast path: RLock check
	r.mu.RLock()
	if ptr, ok := r.items[key]; ok {
		r.mu.RUnlock()
		return ptr
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := r.items[key]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	r.items[key] = ptr
	return ptr
}

// Value returns the current value of key, 0 if never registered
func (r *Registry) Value(key string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ptr, ok := r.items[key]; ok {
		return ptr.Load()
	}
	return 0
}

// Count returns the number of registered counters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// String formats all counters as sorted key=value pairs
func (r *Registry) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, r.items[k].Load())
	}
	return strings.Join(parts, " ")
}

// StoreMax raises c to val if val is larger
func StoreMax(c *atomic.Int64, val int64) {
	for {
		old := c.Load()
		if val <= old || c.CompareAndSwap(old, val) {
			return
		}
	}
}
