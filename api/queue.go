// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts for the bipartite byte queue and its blocking variant.

package api

// Queue is the unsynchronized bipartite queue contract.
//
// All transfer methods return the count actually moved, which may be
// smaller than requested (a short transfer) when the active partition
// cannot satisfy the whole request. A short result is normal control
// flow, not an error: the caller retries with the remainder. A zero
// result is a legal short transfer; it indicates the queue rotated
// its internal regions and the next call will make progress.
//
// Queue performs no internal locking. It is safe for exactly one
// writer and one reader only when both sides are serialized
// externally, e.g. by BlockingQueue.
type Queue interface {
	// Put copies elements from data into the queue and returns how
	// many were written.
	Put(data []byte) int
	// Get copies elements from the queue into dst and returns how
	// many were read.
	Get(dst []byte) int
	// Skip discards up to n elements and returns how many were
	// discarded. Skip(n) advances exactly like Get into a throwaway
	// destination of length n.
	Skip(n int) int
	// Avail reports how many elements a single Get can return.
	Avail() int
	// Free reports how many elements a single Put can accept.
	Free() int
	// Empty reports whether no elements are available for read.
	Empty() bool
	// Full reports whether the queue cannot accept more elements.
	Full() bool
	// Have reports whether any elements are available for read.
	Have() bool
}

// BlockingQueue extends Queue with blocking transfers, exact-size
// variants and a one-way end-of-stream signal.
//
// Exact-size semantics (PutAll transferring precisely the requested
// count) are only guaranteed under a single producer and a single
// consumer; with more peers a call remains memory-safe but may be
// partially satisfied by an interleaved peer.
type BlockingQueue interface {
	Queue

	// PutAll blocks until all of data is written. Always returns
	// len(data). With no consumer present it can block forever.
	PutAll(data []byte) int
	// GetAll blocks until len(dst) elements are read or the stream
	// has ended and drained; returns the count actually read.
	GetAll(dst []byte) int
	// SkipAll blocks until n elements are discarded or the stream
	// has ended and drained; returns the count actually discarded.
	SkipAll(n int) int
	// End marks the stream ended and wakes all blocked readers.
	// One-way: the flag never resets. Writers are unaffected.
	End()
	// Ended reports whether End has been called.
	Ended() bool
}
