//go:build !linux

// File: arena/arena_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback allocation path for platforms without the mmap fast path.

package arena

func allocate(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

func unmap(mem []byte) error {
	return nil
}
