// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// concurrency_deadlock_test.go — Producer/consumer pairs over the
// blocking queue under randomized load, with watchdog timeouts to
// surface deadlocks and stranded data.
package tests

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/momentics/bipbuf/bip"
)

// TestBlockingRoundTripFidelity streams 5000 random bytes through a
// 200-byte buffer with produce/consume chunk sizes drawn from
// [10,500]. The consumed sequence must match the produced sequence
// exactly, and the pair must never deadlock.
func TestBlockingRoundTripFidelity(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		in := make([]byte, 5000)
		rand.New(rand.NewSource(seed)).Read(in)

		q := bip.NewBlocking(make([]byte, 200))
		done := make(chan []byte, 1)

		go func(seed int64) {
			rng := rand.New(rand.NewSource(seed + 1000))
			out := make([]byte, 0, len(in))
			chunk := make([]byte, 500)
			for {
				size := 10 + rng.Intn(491)
				n := q.Get(chunk[:size])
				if n == 0 {
					break
				}
				out = append(out, chunk[:n]...)
			}
			done <- out
		}(seed)

		rng := rand.New(rand.NewSource(seed + 2000))
		left := in
		for len(left) > 0 {
			size := 10 + rng.Intn(491)
			if size > len(left) {
				size = len(left)
			}
			left = left[q.Put(left[:size]):]
		}
		q.End()

		select {
		case out := <-done:
			if len(out) != len(in) {
				t.Fatalf("seed %d: produced %d bytes, consumed %d", seed, len(in), len(out))
			}
			if !bytes.Equal(in, out) {
				t.Fatalf("seed %d: consumed stream differs from produced", seed)
			}
		case <-time.After(30 * time.Second):
			t.Fatalf("seed %d: timeout, producer/consumer deadlock", seed)
		}
	}
}

// TestExactTransferPairs runs PutAll against GetAll with mismatched
// chunking; the exact-size contract must hold for every call.
func TestExactTransferPairs(t *testing.T) {
	in := make([]byte, 10000)
	rand.New(rand.NewSource(77)).Read(in)

	q := bip.NewBlocking(make([]byte, 64))
	done := make(chan []byte, 1)

	go func() {
		rng := rand.New(rand.NewSource(78))
		out := make([]byte, 0, len(in))
		for len(out) < len(in) {
			dst := make([]byte, 1+rng.Intn(300))
			if len(out)+len(dst) > len(in) {
				dst = dst[:len(in)-len(out)]
			}
			if n := q.GetAll(dst); n != len(dst) {
				t.Errorf("GetAll returned %d, want %d", n, len(dst))
				break
			}
			out = append(out, dst...)
		}
		done <- out
	}()

	rng := rand.New(rand.NewSource(79))
	left := in
	for len(left) > 0 {
		size := 1 + rng.Intn(300)
		if size > len(left) {
			size = len(left)
		}
		if n := q.PutAll(left[:size]); n != size {
			t.Fatalf("PutAll returned %d, want %d", n, size)
		}
		left = left[size:]
	}

	select {
	case out := <-done:
		if !bytes.Equal(in, out) {
			t.Fatal("exact transfer pair corrupted the stream")
		}
	case <-time.After(30 * time.Second):
		t.Fatal("timeout: PutAll/GetAll pair deadlocked")
	}
}

// TestSkippingConsumer pairs a producer with a consumer that discards
// everything via SkipAll.
func TestSkippingConsumer(t *testing.T) {
	q := bip.NewBlocking(make([]byte, 32))
	const total = 4096
	done := make(chan int, 1)

	go func() {
		done <- q.SkipAll(total + 100) // more than produced, stops at End
	}()

	q.PutAll(make([]byte, total))
	q.End()

	select {
	case n := <-done:
		if n != total {
			t.Fatalf("skipped %d bytes, want %d", n, total)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timeout: skipping consumer deadlocked")
	}
}
