// File: bip/stream.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// io.Writer / io.Reader adapters over the blocking queue, so a
// producer/consumer pair can be wired with io.Copy and friends.

package bip

import "io"

// Compile-time interface compliance.
var (
	_ io.WriteCloser = (*Writer)(nil)
	_ io.Reader      = (*Reader)(nil)
)

// Writer adapts a Blocking queue to io.WriteCloser. Write blocks
// until the whole slice is buffered; Close marks the stream ended so
// the reading side can drain and stop.
type Writer struct {
	q *Blocking
}

// NewWriter returns the producer-side io adapter for q.
func NewWriter(q *Blocking) *Writer { return &Writer{q: q} }

// Write buffers all of p, blocking as needed. It never fails: with no
// consumer present it blocks forever rather than returning an error.
func (w *Writer) Write(p []byte) (int, error) {
	return w.q.PutAll(p), nil
}

// Close marks the stream ended. It never fails and may be called more
// than once.
func (w *Writer) Close() error {
	w.q.End()
	return nil
}

// Reader adapts a Blocking queue to io.Reader.
type Reader struct {
	q *Blocking
}

// NewReader returns the consumer-side io adapter for q.
func NewReader(q *Blocking) *Reader { return &Reader{q: q} }

// Read blocks until at least one element is available or the stream
// has ended and drained, in which case it returns io.EOF.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := r.q.Get(p)
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}
