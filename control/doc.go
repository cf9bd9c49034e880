// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability layer for bipbuf: a registry that aggregates stats
// probes from live queues and arena pools so harnesses and operators
// can snapshot them by name.
package control
