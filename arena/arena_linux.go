//go:build linux

// File: arena/arena_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux allocation path: anonymous private mappings, with a
// transparent-hugepage hint for large blocks.

package arena

import "golang.org/x/sys/unix"

// hugeThreshold is the smallest block for which a hugepage hint pays off.
const hugeThreshold = 2 << 20

func allocate(size int) ([]byte, bool, error) {
	mem, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false, err
	}
	if size >= hugeThreshold {
		// Best effort; the mapping works either way.
		_ = unix.Madvise(mem, unix.MADV_HUGEPAGE)
	}
	return mem, true, nil
}

func unmap(mem []byte) error {
	return unix.Munmap(mem)
}
