package api

// PageAllocator interface for buddy-system page management.
type PageAllocator interface {
	// Alloc a block of 2^(rank-1) pages, 1 <= rank <= Maxrank.
	// Returned address is the base of the block's head page and is
	// aligned to the block size.
	Alloc(rank int64) (addr uint64, err error)

	// Free a block previously obtained from Alloc. Merges the block
	// with its free buddies as far as possible.
	Free(addr uint64) error

	// Rankof rank of the block whose head page contains addr. Valid
	// for any page of a live allocation and for the head page of a
	// free block.
	Rankof(addr uint64) (rank int64, err error)

	// Freecount number of free blocks at rank.
	Freecount(rank int64) (int64, error)

	// Info of page accounting for this arena, in bytes.
	Info() (capacity, allocated, available int64)

	// Utilization per-rank census of free blocks.
	Utilization() ([]int64, []float64)

	// Release arena and all its resources.
	Release()
}
