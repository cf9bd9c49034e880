// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the bipbuf library: queue interfaces, stats
// structures and common error values.
// Implementations live in the bip and arena packages.
package api
