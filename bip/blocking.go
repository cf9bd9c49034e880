// File: bip/blocking.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Blocking producer/consumer wrapper over the bipartite buffer core:
// one mutex, two wait conditions, one-way end-of-stream sentinel.

package bip

import (
	"sync"

	"github.com/momentics/bipbuf/api"
)

// Compile-time interface compliance.
var _ api.BlockingQueue = (*Blocking)(nil)

// Blocking turns the core's non-blocking, possibly-partial operations
// into blocking ones for one producer and one consumer thread.
//
// Writers park while no space can be made writable by a rotation;
// readers park while no data is buffered and the stream has not
// ended. The wait predicates deliberately use the core's Writable and
// Buffered totals rather than the role-local Full and Empty: the
// role-local view can report full and empty simultaneously while data
// sits in the non-active partition, which would park both sides for
// good. A successful call always transfers at least one element,
// stepping across at most one internal rotation; only a read on an
// ended, drained stream returns 0.
//
// All state is lock-protected, so any number of goroutines may call
// safely, but exact-size and ordering guarantees hold only for a
// single producer and a single consumer.
type Blocking struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	buf   *Buffer
	ended bool
	stats api.QueueStats
}

// NewBlocking constructs a blocking queue over caller-owned mem.
// The memory contract is the same as New's.
func NewBlocking(mem []byte) *Blocking {
	q := &Blocking{buf: New(mem)}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Put blocks while the buffer has no writable space, then performs
// one bounded write of up to len(data) elements and returns the count
// actually written (may be short; the caller retries with the rest).
func (q *Blocking) Put(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.waitWritable()
	n := q.putLocked(data)
	q.stats.Puts++
	q.stats.BytesIn += int64(n)
	if n < len(data) {
		q.stats.ShortTransfers++
	}
	q.notEmpty.Broadcast()
	return n
}

// Get blocks while the buffer is empty and the stream has not ended,
// then performs one bounded read and returns the count actually read.
// Returns 0 only once the stream has ended and drained.
func (q *Blocking) Get(dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.waitReadable()
	n := q.getLocked(dst)
	q.stats.Gets++
	q.stats.BytesOut += int64(n)
	if n < len(dst) {
		q.stats.ShortTransfers++
	}
	if n > 0 {
		q.notFull.Broadcast()
	}
	return n
}

// Skip blocks like Get, then discards up to n elements and returns
// the count actually discarded.
func (q *Blocking) Skip(n int) int {
	if n <= 0 {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.waitReadable()
	k := q.skipLocked(n)
	q.stats.Skips++
	q.stats.BytesOut += int64(k)
	if k < n {
		q.stats.ShortTransfers++
	}
	if k > 0 {
		q.notFull.Broadcast()
	}
	return k
}

// PutAll blocks, re-waiting as needed, until all of data is written.
// Always returns len(data). There is no cancellation: with no
// consumer present this can block forever.
func (q *Blocking) PutAll(data []byte) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	total := 0
	for total < len(data) {
		q.waitWritable()
		n := q.putLocked(data[total:])
		total += n
		q.stats.Puts++
		q.stats.BytesIn += int64(n)
		q.notEmpty.Broadcast()
	}
	return total
}

// GetAll blocks, re-waiting as needed, until len(dst) elements are
// read or the stream is observed ended while empty. Returns the count
// actually read, which is less than len(dst) only after End.
func (q *Blocking) GetAll(dst []byte) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	total := 0
	for total < len(dst) {
		q.waitReadable()
		if q.buf.Buffered() == 0 {
			break // ended and drained
		}
		n := q.getLocked(dst[total:])
		total += n
		q.stats.Gets++
		q.stats.BytesOut += int64(n)
		q.notFull.Broadcast()
	}
	if total < len(dst) {
		q.stats.ShortTransfers++
	}
	return total
}

// SkipAll blocks, re-waiting as needed, until n elements are
// discarded or the stream is observed ended while empty. Returns the
// count actually discarded.
func (q *Blocking) SkipAll(n int) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	total := 0
	for total < n {
		q.waitReadable()
		if q.buf.Buffered() == 0 {
			break
		}
		k := q.skipLocked(n - total)
		total += k
		q.stats.Skips++
		q.stats.BytesOut += int64(k)
		q.notFull.Broadcast()
	}
	if total < n {
		q.stats.ShortTransfers++
	}
	return total
}

// End marks the stream ended and wakes every waiting reader, letting
// blocked and future reads return early instead of hanging. One-way:
// the flag never resets. Writers and the not-full condition are
// unaffected.
func (q *Blocking) End() {
	q.mu.Lock()
	q.ended = true
	q.mu.Unlock()
	q.notEmpty.Broadcast()
}

// Ended reports whether End has been called.
func (q *Blocking) Ended() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ended
}

// Avail reports how many elements a single read can return.
func (q *Blocking) Avail() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Avail()
}

// Free reports how many elements a single write can accept.
func (q *Blocking) Free() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Free()
}

// Empty reports whether no elements are available for read.
func (q *Blocking) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Empty()
}

// Full reports whether the write target can accept no more elements.
func (q *Blocking) Full() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Full()
}

// Have reports whether any elements are available for read.
func (q *Blocking) Have() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Have()
}

// Cap returns the total capacity of the backing memory.
func (q *Blocking) Cap() int {
	return q.buf.Cap()
}

// Stats returns a snapshot of the transfer counters.
func (q *Blocking) Stats() api.QueueStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	s := q.stats
	s.Rotations = q.buf.Rotations()
	return s
}

// waitWritable parks the caller until a write can make progress.
func (q *Blocking) waitWritable() {
	for q.buf.Writable() == 0 {
		q.stats.ProducerWaits++
		q.notFull.Wait()
	}
}

// waitReadable parks the caller until a read can make progress or the
// stream has ended.
func (q *Blocking) waitReadable() {
	for q.buf.Buffered() == 0 && !q.ended {
		q.stats.ConsumerWaits++
		q.notEmpty.Wait()
	}
}

// putLocked performs one bounded put, stepping across at most one
// region rotation so a writer admitted past waitWritable always makes
// progress.
func (q *Blocking) putLocked(data []byte) int {
	n := q.buf.Put(data)
	if n == 0 && len(data) > 0 && q.buf.Writable() > 0 {
		n = q.buf.Put(data)
	}
	return n
}

// getLocked is the reader-side counterpart of putLocked.
func (q *Blocking) getLocked(dst []byte) int {
	n := q.buf.Get(dst)
	if n == 0 && len(dst) > 0 && q.buf.Buffered() > 0 {
		n = q.buf.Get(dst)
	}
	return n
}

// skipLocked is getLocked without the copy.
func (q *Blocking) skipLocked(n int) int {
	k := q.buf.Skip(n)
	if k == 0 && n > 0 && q.buf.Buffered() > 0 {
		k = q.buf.Skip(n)
	}
	return k
}
