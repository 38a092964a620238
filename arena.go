package buddy

import "fmt"

import s "github.com/bnclabs/gosettings"
import "github.com/dustin/go-humanize"

import "github.com/bnclabs/gobuddy/api"
import "github.com/bnclabs/gobuddy/lib"

// Arena tracks a contiguous run of `npages` pages starting at `base`.
// At every instant the page range is exactly partitioned into
// allocated blocks and free blocks, with free blocks of each rank
// held on their own list. Arena is not thread safe, callers needing
// concurrent access shall serialize all operations externally.
type Arena struct {
	// 64-bit aligned stats
	n_allocs int64
	n_frees  int64
	n_splits int64
	n_merges int64

	table  *pagetable
	flists *flist

	// configuration
	base      uint64 // address of page 0
	npages    int64  // number of pages tracked by this arena
	pagesize  int64
	logprefix string
}

//---- construction

// NewArena construct an allocator over npages pages of memory
// starting at base.
//
// The page range is greedily partitioned, left to right, into the
// smallest set of maximal aligned power-of-2 free blocks, so npages
// need not itself be a power of 2. Fails with ErrorInvalidArgument
// when npages is zero, negative or exceeds Maxpages, when base is not
// aligned to "pagesize", or when "pagesize" is not a power of 2.
func NewArena(base uint64, npages int64, setts s.Settings) (*Arena, error) {
	pagesize := setts.Int64("pagesize")
	if npages <= 0 || npages > Maxpages {
		return nil, api.ErrorInvalidArgument
	} else if lib.Bit64(pagesize).Ispowerof2() == false {
		return nil, api.ErrorInvalidArgument
	} else if (base % uint64(pagesize)) != 0 {
		return nil, api.ErrorInvalidArgument
	}
	arena := &Arena{
		table:  newpagetable(npages),
		flists: newflist(npages),
		// configuration
		base:      base,
		npages:    npages,
		pagesize:  pagesize,
		logprefix: fmt.Sprintf("BUDDY [%x]", base),
	}
	for idx := int64(0); idx < npages; {
		rank := maxfit(idx, npages)
		arena.linkfree(idx, rank)
		idx += pagesof(rank)
	}
	fmsg := "%v tracking %v pages of %v\n"
	infof(fmsg, arena.logprefix, npages, humanize.IBytes(uint64(pagesize)))
	return arena, nil
}

//---- operations

// Alloc implement api.PageAllocator{} interface.
func (arena *Arena) Alloc(rank int64) (uint64, error) {
	if arena.table == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	if rank < 1 || rank > Maxrank {
		return 0, api.ErrorInvalidArgument
	}
	fr := rank
	for fr <= Maxrank && arena.flists.isempty(fr) {
		fr++
	}
	if fr > Maxrank {
		return 0, api.ErrorOutofSpace
	}
	idx, _ := arena.flists.popany(fr)
	arena.table.clear(idx)
	// split down to the requested rank, keeping the low half and
	// returning the high half to its list.
	for fr > rank {
		fr--
		arena.linkfree(idx+pagesof(fr), fr)
		arena.n_splits++
	}
	arena.table.markallocated(idx, rank)
	arena.n_allocs++
	return arena.addrof(idx), nil
}

// Free implement api.PageAllocator{} interface. Rejects addresses
// outside the arena, misaligned addresses, body pages of a live block
// and double frees, leaving the arena untouched in every such case.
func (arena *Arena) Free(addr uint64) error {
	if arena.table == nil {
		panicerr("%v arena released", arena.logprefix)
	}
	idx, err := arena.indexof(addr)
	if err != nil {
		return err
	}
	tag, rank := arena.table.get(idx)
	if tag != pgAllocated {
		return api.ErrorInvalidArgument
	} else if (idx % pagesof(rank)) != 0 { // body page, not the head
		return api.ErrorInvalidArgument
	}
	arena.table.clearblock(idx, rank)
	// merge with the buddy as long as it is free at the same rank.
	for rank < Maxrank {
		buddy := buddyof(idx, rank)
		if (buddy + pagesof(rank)) > arena.npages {
			break
		}
		btag, brank := arena.table.get(buddy)
		if btag != pgFreehead || brank != rank {
			break
		}
		arena.unlinkfree(buddy, rank)
		if buddy < idx {
			idx = buddy
		}
		rank++
		arena.n_merges++
	}
	arena.linkfree(idx, rank)
	arena.n_frees++
	return nil
}

// Rankof implement api.PageAllocator{} interface. Body pages of a
// free block carry no status and fail with ErrorInvalidArgument.
func (arena *Arena) Rankof(addr uint64) (int64, error) {
	idx, err := arena.indexof(addr)
	if err != nil {
		return 0, err
	}
	tag, rank := arena.table.get(idx)
	if tag == pgUntracked {
		return 0, api.ErrorInvalidArgument
	}
	return rank, nil
}

// Freecount implement api.PageAllocator{} interface.
func (arena *Arena) Freecount(rank int64) (int64, error) {
	if rank < 1 || rank > Maxrank {
		return 0, api.ErrorInvalidArgument
	}
	return arena.flists.count(rank), nil
}

//---- statistics and maintenance

// Info implement api.PageAllocator{} interface.
func (arena *Arena) Info() (capacity, allocated, available int64) {
	capacity = arena.npages * arena.pagesize
	freepages := int64(0)
	for rank := int64(1); rank <= Maxrank; rank++ {
		freepages += arena.flists.count(rank) * pagesof(rank)
	}
	available = freepages * arena.pagesize
	allocated = capacity - available
	return
}

// Utilization implement api.PageAllocator{} interface. Returns the
// ranks that currently hold free blocks and, for each, the percentage
// of arena pages held free at that rank.
func (arena *Arena) Utilization() ([]int64, []float64) {
	ranks := make([]int64, 0, Maxrank)
	zs := make([]float64, 0, Maxrank)
	for rank := int64(1); rank <= Maxrank; rank++ {
		n := arena.flists.count(rank)
		if n == 0 {
			continue
		}
		freepages := n * pagesof(rank)
		ranks = append(ranks, rank)
		zs = append(zs, (float64(freepages)/float64(arena.npages))*100)
	}
	return ranks, zs
}

// Release implement api.PageAllocator{} interface.
func (arena *Arena) Release() {
	arena.table, arena.flists = nil, nil
	infof("%v released\n", arena.logprefix)
}

//---- local functions

// linkfree register block as free. Pushing onto the list and tagging
// the head page always travel together, free-list membership and the
// head tag never disagree.
func (arena *Arena) linkfree(idx, rank int64) {
	arena.flists.push(rank, idx)
	arena.table.markfreehead(idx, rank)
}

func (arena *Arena) unlinkfree(idx, rank int64) {
	arena.flists.remove(rank, idx)
	arena.table.clear(idx)
}

// indexof convert an address to a page index, the address shall fall
// within the arena and be page aligned.
func (arena *Arena) indexof(addr uint64) (int64, error) {
	if addr < arena.base {
		return 0, api.ErrorInvalidArgument
	}
	offset := addr - arena.base
	if (offset % uint64(arena.pagesize)) != 0 {
		return 0, api.ErrorInvalidArgument
	}
	idx := int64(offset / uint64(arena.pagesize))
	if idx >= arena.npages {
		return 0, api.ErrorInvalidArgument
	}
	return idx, nil
}

func (arena *Arena) addrof(idx int64) uint64 {
	return arena.base + uint64(idx)*uint64(arena.pagesize)
}
