// File: bip/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unsynchronized bipartite buffer core: two partitions over one
// caller-supplied allocation, with O(1) role handoff between them.

package bip

import "github.com/momentics/bipbuf/api"

// Compile-time interface compliance.
var _ api.Queue = (*Buffer)(nil)

const (
	partA = 0
	partB = 1
)

// Buffer is the unsynchronized bipartite buffer.
//
// It owns two partitions A and B sharing the backing slice. A's lower
// bound is the buffer start and its upper bound is B's begin cursor;
// B's lower bound is A's end cursor and its upper bound is the buffer
// end. The held ranges therefore can never overlap, and together they
// are exactly the unread data in the buffer.
//
// Four role indices alias the two partitions: the current write
// target and read source, plus the partition queued to take over each
// role at the next fill or drain. Initially both active roles point
// at B and both queued roles at A, so the first writes land in B with
// the full capacity ahead of them. (Variants of this algorithm differ
// here; this choice matters only at the very first fill-triggered
// switch and is pinned by a dedicated test.)
//
// Buffer never allocates, grows or shrinks the backing memory and
// performs no locking. It must not be copied after first use.
type Buffer struct {
	mem   []byte
	parts [2]partition

	wr     int // current write target
	rd     int // current read source
	nextWr int // takes over the write role when the target fills
	nextRd int // takes over the read role when the source drains

	rotations int64
}

// New constructs a Buffer over mem. The caller owns mem; it must
// outlive the Buffer and must not be accessed concurrently with it.
func New(mem []byte) *Buffer {
	return &Buffer{
		mem:    mem,
		wr:     partB,
		rd:     partB,
		nextWr: partA,
		nextRd: partA,
	}
}

// lower resolves the live lower bound of partition i.
func (b *Buffer) lower(i int) int {
	if i == partA {
		return 0
	}
	return b.parts[partA].end
}

// upper resolves the live upper bound of partition i.
func (b *Buffer) upper(i int) int {
	if i == partA {
		return b.parts[partB].begin
	}
	return len(b.mem)
}

// Put copies elements from data into the write target and returns the
// count written. When data does not fit, exactly Free() elements are
// written, the filled partition is queued for the reader and the
// write role switches; the caller re-invokes with the remainder. A
// zero return means the roles rotated and the next call will progress.
func (b *Buffer) Put(data []byte) int {
	f := b.parts[b.wr].free(b.upper(b.wr))
	if len(data) >= f {
		b.parts[b.wr].put(b.mem, data[:f])
		b.fillSwitch()
		return f
	}
	b.parts[b.wr].put(b.mem, data)
	return len(data)
}

// Get copies elements from the read source into dst and returns the
// count read. When the source holds fewer than len(dst) elements it
// is drained completely, recycled as a fresh write region and the
// read role switches; the caller re-invokes for more.
func (b *Buffer) Get(dst []byte) int {
	a := b.parts[b.rd].avail()
	if len(dst) >= a {
		b.parts[b.rd].get(b.mem, dst[:a])
		b.drainSwitch()
		return a
	}
	b.parts[b.rd].get(b.mem, dst)
	return len(dst)
}

// Skip discards up to n elements, advancing cursors and switching
// roles exactly like a Get into a throwaway destination of length n.
func (b *Buffer) Skip(n int) int {
	a := b.parts[b.rd].avail()
	if n >= a {
		b.parts[b.rd].skip(a)
		b.drainSwitch()
		return a
	}
	b.parts[b.rd].skip(n)
	return n
}

// fillSwitch queues the filled write target for the reader and hands
// the write role to the queued partition. Both roles are re-normalized:
// the read role can be parked on a drained partition while all buffered
// data sits in the one just filled, and a write landing in front of
// that data would be consumed out of order.
func (b *Buffer) fillSwitch() {
	b.nextRd = b.wr
	b.wr = b.nextWr
	b.normalizeWrite()
	b.normalizeRead()
	b.rotations++
}

// drainSwitch recycles the fully-drained read source and hands the
// read role to the queued partition.
func (b *Buffer) drainSwitch() {
	b.parts[b.rd].reset(b.lower(b.rd))
	b.nextWr = b.rd
	b.rd = b.nextRd
	b.normalizeRead()
	b.rotations++
}

// normalizeWrite repoints the write role at the sibling when the
// queued target has no space but the sibling does. The queued
// reference is stale when a partition fills while it is also the read
// source; left alone, the writer would rotate in place and never
// reach the usable region.
func (b *Buffer) normalizeWrite() {
	if b.parts[b.wr].free(b.upper(b.wr)) == 0 {
		o := 1 - b.wr
		if b.parts[o].free(b.upper(o)) > 0 {
			b.wr = o
		}
	}
}

// normalizeRead is the reader-side counterpart, run after every role
// rotation on either side: a partition that fills while being read
// queues itself, and following that stale reference after the drain
// would strand the sibling's data; a fill while the read role sits on
// a drained partition would let new writes slip in front of it.
func (b *Buffer) normalizeRead() {
	if b.parts[b.rd].avail() == 0 {
		o := 1 - b.rd
		if b.parts[o].avail() > 0 {
			b.rd = o
		}
	}
}

// Avail reports how many elements a single Get can return.
func (b *Buffer) Avail() int { return b.parts[b.rd].avail() }

// Free reports how many elements a single Put can accept.
func (b *Buffer) Free() int { return b.parts[b.wr].free(b.upper(b.wr)) }

// Empty reports whether no elements are available for read.
func (b *Buffer) Empty() bool { return b.Avail() == 0 }

// Full reports whether the write target can accept no more elements.
func (b *Buffer) Full() bool { return b.Free() == 0 }

// Have reports whether any elements are available for read.
func (b *Buffer) Have() bool { return !b.Empty() }

// Cap returns the total capacity of the backing memory.
func (b *Buffer) Cap() int { return len(b.mem) }

// Buffered returns the total unread element count across both
// partitions. Unlike Avail it is independent of the current roles.
func (b *Buffer) Buffered() int {
	return b.parts[partA].avail() + b.parts[partB].avail()
}

// Writable returns the total write capacity across both partitions.
// It is zero exactly when no Put can progress even after a rotation.
func (b *Buffer) Writable() int {
	return b.parts[partA].free(b.upper(partA)) +
		b.parts[partB].free(b.upper(partB))
}

// Rotations returns the number of role switches performed so far.
func (b *Buffer) Rotations() int64 { return b.rotations }
