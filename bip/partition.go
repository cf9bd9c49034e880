// File: bip/partition.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// partition is one of the two linear regions composing a Buffer.

package bip

// partition holds the cursor pair of one linear region:
// mem[begin:end] is the data it currently holds. Its dynamic lower
// and upper bounds are not stored here; with exactly two partitions
// over one backing slice each bound is a live relation resolved by
// the owning Buffer (the sibling's cursor or a fixed buffer edge),
// so capacity recomputes automatically as the sibling moves.
//
// No bounds are checked here: the owner upholds the preconditions.
type partition struct {
	begin int // read cursor
	end   int // write cursor
}

// put copies data at the write cursor and advances it.
// Precondition: len(data) <= free(upper).
func (p *partition) put(mem, data []byte) {
	copy(mem[p.end:], data)
	p.end += len(data)
}

// get copies held data into dst and advances the read cursor.
// Precondition: len(dst) <= avail().
func (p *partition) get(mem, dst []byte) {
	copy(dst, mem[p.begin:])
	p.begin += len(dst)
}

// skip advances the read cursor without copying.
// Precondition: n <= avail().
func (p *partition) skip(n int) {
	p.begin += n
}

// avail returns the element count currently held.
func (p *partition) avail() int {
	return p.end - p.begin
}

// free returns the write capacity remaining below the live upper bound.
func (p *partition) free(upper int) int {
	return upper - p.end
}

// reset recycles a fully-drained partition as a fresh write region
// starting at the live lower bound.
func (p *partition) reset(lower int) {
	p.begin, p.end = lower, lower
}
