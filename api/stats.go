// Package api
// Author: momentics <momentics@gmail.com>
//
// Stats structures published by queue and arena implementations.

package api

// QueueStats aggregates transfer accounting for a blocking queue.
type QueueStats struct {
	Puts           int64 // completed Put/PutAll iterations
	Gets           int64 // completed Get/GetAll iterations
	Skips          int64 // completed Skip/SkipAll iterations
	BytesIn        int64
	BytesOut       int64 // includes skipped bytes
	ShortTransfers int64 // transfers that returned less than requested
	Rotations      int64 // partition role switches in the core
	ProducerWaits  int64 // times a writer parked on the not-full condition
	ConsumerWaits  int64 // times a reader parked on the not-empty condition
}

// ArenaPoolStats aggregates allocation/reuse stats for an arena pool.
type ArenaPoolStats struct {
	Allocated int64 // arenas created by the pool
	Reused    int64 // Get calls satisfied from the free list
	Recycled  int64 // arenas returned and kept on the free list
	Released  int64 // arenas handed back to the OS
}
