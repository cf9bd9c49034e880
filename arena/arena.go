// File: arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

import "github.com/momentics/bipbuf/api"

// Arena is one fixed-size backing memory block. On Linux it is an
// anonymous private mapping; elsewhere a plain slice. An Arena must
// outlive every buffer constructed over its bytes.
type Arena struct {
	mem      []byte
	mapped   bool
	released bool
}

// New provisions a block of exactly size bytes.
func New(size int) (*Arena, error) {
	if size <= 0 {
		return nil, api.ErrInvalidSize
	}
	mem, mapped, err := allocate(size)
	if err != nil {
		return nil, err
	}
	return &Arena{mem: mem, mapped: mapped}, nil
}

// Bytes returns the block. The slice must not be used after Release.
func (a *Arena) Bytes() []byte { return a.mem }

// Len returns the block size.
func (a *Arena) Len() int { return len(a.mem) }

// Release returns the block to the OS. The arena must not be used
// afterwards; releasing twice is an error.
func (a *Arena) Release() error {
	if a.released {
		return api.ErrArenaReleased
	}
	a.released = true
	mem := a.mem
	a.mem = nil
	if a.mapped {
		return unmap(mem)
	}
	return nil
}
