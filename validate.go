package buddy

// Validate walk the page table and free lists checking that both
// structures agree, panics on the first violation. Expensive, meant
// for tests and post-mortem debugging.
//
//  * pages partition exactly into allocated and free blocks, no
//    overlap and no gap.
//  * every block starts at an index that is a multiple of its size.
//  * no two free buddies of the same rank coexist.
//  * a page is tagged free-head iff its block is on the matching list.
func (arena *Arena) Validate() {
	var nfree [Maxrank + 1]int64

	idx := int64(0)
	for idx < arena.npages {
		tag, rank := arena.table.get(idx)
		switch tag {
		case pgAllocated:
			arena.validateallocated(idx, rank)

		case pgFreehead:
			arena.validatefree(idx, rank)
			nfree[rank]++

		default:
			panicerr("validate: page %v untracked, partition has a gap", idx)
		}
		idx += pagesof(rank)
	}

	for rank := int64(1); rank <= Maxrank; rank++ {
		if x, y := nfree[rank], arena.flists.count(rank); x != y {
			fmsg := "validate: rank %v has %v free heads, list count %v"
			panicerr(fmsg, rank, x, y)
		}
		arena.flists.walk(rank, func(member int64) bool {
			tag, r := arena.table.get(member)
			if tag != pgFreehead || r != rank {
				fmsg := "validate: list member %v at rank %v tagged {%v,%v}"
				panicerr(fmsg, member, rank, tag, r)
			}
			return true
		})
	}
}

func (arena *Arena) validateallocated(idx, rank int64) {
	if rank < 1 || rank > Maxrank {
		panicerr("validate: page %v allocated at rank %v", idx, rank)
	} else if (idx % pagesof(rank)) != 0 {
		panicerr("validate: allocated block %v misaligned for rank %v", idx, rank)
	}
	till := idx + pagesof(rank)
	if till > arena.npages {
		panicerr("validate: allocated block %v overruns the arena", idx)
	}
	for i := idx; i < till; i++ {
		if tag, r := arena.table.get(i); tag != pgAllocated || r != rank {
			fmsg := "validate: page %v of block %v tagged {%v,%v}"
			panicerr(fmsg, i, idx, tag, r)
		}
	}
}

func (arena *Arena) validatefree(idx, rank int64) {
	if rank < 1 || rank > Maxrank {
		panicerr("validate: page %v free at rank %v", idx, rank)
	} else if (idx % pagesof(rank)) != 0 {
		panicerr("validate: free block %v misaligned for rank %v", idx, rank)
	}
	till := idx + pagesof(rank)
	if till > arena.npages {
		panicerr("validate: free block %v overruns the arena", idx)
	}
	for i := idx + 1; i < till; i++ {
		if tag, _ := arena.table.get(i); tag != pgUntracked {
			fmsg := "validate: body page %v of free block %v tagged %v"
			panicerr(fmsg, i, idx, tag)
		}
	}
	// the buddy shall never be free at the same rank, else the merge
	// loop missed a coalesce.
	if rank < Maxrank {
		buddy := buddyof(idx, rank)
		if (buddy + pagesof(rank)) <= arena.npages {
			if tag, r := arena.table.get(buddy); tag == pgFreehead && r == rank {
				fmsg := "validate: free buddies %v and %v at rank %v"
				panicerr(fmsg, idx, buddy, rank)
			}
		}
	}
	// membership on the matching list (the census in Validate checks
	// the reverse direction).
	onlist := false
	arena.flists.walk(rank, func(member int64) bool {
		if member == idx {
			onlist = true
			return false
		}
		return true
	})
	if onlist == false {
		panicerr("validate: free block %v missing from rank %v list", idx, rank)
	}
}
