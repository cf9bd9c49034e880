// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe stats registry with dynamic probe registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/bipbuf/api"
)

// QueueProbe reports the current stats of one queue.
type QueueProbe func() api.QueueStats

// PoolProbe reports the current stats of one arena pool.
type PoolProbe func() api.ArenaPoolStats

// MetricsRegistry holds named stats probes.
type MetricsRegistry struct {
	mu      sync.RWMutex
	queues  map[string]QueueProbe
	pools   map[string]PoolProbe
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		queues: make(map[string]QueueProbe),
		pools:  make(map[string]PoolProbe),
	}
}

// RegisterQueue registers or replaces a queue stats probe.
func (mr *MetricsRegistry) RegisterQueue(name string, probe QueueProbe) {
	mr.mu.Lock()
	mr.queues[name] = probe
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// RegisterPool registers or replaces an arena pool stats probe.
func (mr *MetricsRegistry) RegisterPool(name string, probe PoolProbe) {
	mr.mu.Lock()
	mr.pools[name] = probe
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// QueueSnapshot evaluates all queue probes and returns their stats.
func (mr *MetricsRegistry) QueueSnapshot() map[string]api.QueueStats {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]api.QueueStats, len(mr.queues))
	for name, probe := range mr.queues {
		out[name] = probe()
	}
	return out
}

// PoolSnapshot evaluates all pool probes and returns their stats.
func (mr *MetricsRegistry) PoolSnapshot() map[string]api.ArenaPoolStats {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]api.ArenaPoolStats, len(mr.pools))
	for name, probe := range mr.pools {
		out[name] = probe()
	}
	return out
}
