// File: arena/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO pool of equally-sized arenas, so short-lived buffers reuse
// mappings instead of churning mmap/munmap.

package arena

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/bipbuf/api"
)

// maxIdle bounds the free list; surplus arenas go back to the OS.
const maxIdle = 64

// Pool hands out arenas of one fixed size, recycling released ones in
// FIFO order. Safe for concurrent use.
type Pool struct {
	mu     sync.Mutex
	free   *queue.Queue
	size   int
	closed bool
	stats  api.ArenaPoolStats
}

// NewPool creates a pool of size-byte arenas.
func NewPool(size int) (*Pool, error) {
	if size <= 0 {
		return nil, api.ErrInvalidSize
	}
	return &Pool{
		free: queue.New(),
		size: size,
	}, nil
}

// Size returns the arena size this pool hands out.
func (p *Pool) Size() int { return p.size }

// Get returns an arena, reusing a recycled one when available.
func (p *Pool) Get() (*Arena, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, api.ErrPoolClosed
	}
	if p.free.Length() > 0 {
		a := p.free.Remove().(*Arena)
		p.stats.Reused++
		p.mu.Unlock()
		return a, nil
	}
	p.stats.Allocated++
	p.mu.Unlock()
	return New(p.size)
}

// Put recycles an arena for reuse. Arenas of the wrong size, or any
// arena handed in after Close, are released instead.
func (p *Pool) Put(a *Arena) {
	if a == nil {
		return
	}
	p.mu.Lock()
	if !p.closed && a.Len() == p.size && p.free.Length() < maxIdle {
		p.free.Add(a)
		p.stats.Recycled++
		p.mu.Unlock()
		return
	}
	p.stats.Released++
	p.mu.Unlock()
	_ = a.Release()
}

// Close releases every idle arena. Outstanding arenas stay valid;
// they are released when handed back via Put.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return api.ErrPoolClosed
	}
	p.closed = true
	var first error
	for p.free.Length() > 0 {
		a := p.free.Remove().(*Arena)
		p.stats.Released++
		if err := a.Release(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() api.ArenaPoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
