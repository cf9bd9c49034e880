// Package arena
// Author: momentics <momentics@gmail.com>
//
// Backing memory provisioning for bipartite buffers. The buffer core
// never allocates: callers own the memory and must keep it alive for
// the buffer's whole lifetime. This package is the caller-side layer
// that provisions such blocks — page-aligned mappings on Linux, plain
// slices elsewhere — and recycles them through a pool.
package arena
