// File: bip/span.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy span access to the bipartite buffer: claim/commit on the
// write side, peek on the read side. Because every region is linear,
// a span is always one contiguous sub-slice of the backing memory.

package bip

// Claim returns a writable contiguous span of up to n elements inside
// the current write target, letting producers fill buffer memory
// directly (e.g. as the destination of a read syscall). The claimed
// elements become visible to readers only after Commit. When the
// current target is exhausted, Claim first rotates the roles the same
// way a Put observing no free space does. Returns nil when the buffer
// is full or n <= 0.
func (b *Buffer) Claim(n int) []byte {
	f := b.parts[b.wr].free(b.upper(b.wr))
	if f == 0 {
		b.fillSwitch()
		f = b.parts[b.wr].free(b.upper(b.wr))
	}
	if f == 0 || n <= 0 {
		return nil
	}
	if n < f {
		f = n
	}
	end := b.parts[b.wr].end
	return b.mem[end : end+f]
}

// Commit publishes the first n elements of the most recent Claim.
// Precondition: 0 <= n <= len of that Claim result, with no Put in
// between. When the write target becomes exhausted the filled
// partition is queued for the reader and the write role switches,
// exactly like a filling Put.
func (b *Buffer) Commit(n int) {
	if n <= 0 {
		return
	}
	b.parts[b.wr].end += n
	if b.parts[b.wr].free(b.upper(b.wr)) == 0 {
		b.fillSwitch()
	}
}

// Peek returns the readable contiguous span of the current read
// source without consuming it. Consume peeked data with Skip. When
// the current source is drained while data waits in the sibling, Peek
// performs the same role switch a Get would, so a Peek followed by a
// full Skip is indistinguishable from a Get. Returns nil when the
// buffer is empty.
func (b *Buffer) Peek() []byte {
	if b.parts[b.rd].avail() == 0 {
		if b.Buffered() == 0 {
			return nil
		}
		b.drainSwitch()
	}
	p := &b.parts[b.rd]
	return b.mem[p.begin:p.end]
}
