// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the bipbuf library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidSize   = fmt.Errorf("invalid size")
	ErrArenaReleased = fmt.Errorf("arena already released")
	ErrPoolClosed    = fmt.Errorf("arena pool is closed")
)
