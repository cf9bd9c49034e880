// Package bip
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bipartite circular buffer: a bounded FIFO byte store in which every
// single read or write touches one contiguous span of the backing
// memory, never split across a wraparound boundary. The buffer is
// realized as two alternating linear regions (partitions) over one
// caller-supplied allocation; switching which region plays the write
// or read role is O(1) and moves no data.
//
// Buffer is the unsynchronized core for one externally-serialized
// writer and reader. Blocking wraps it with a mutex, two wait
// conditions and an end-of-stream signal for a producer/consumer
// thread pair. Writer and Reader adapt Blocking to the io interfaces.
package bip
