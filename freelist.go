// Functions and methods are not thread safe.

package buddy

// flist maintains one doubly-linked list of free-block head pages per
// rank. Linkage is index-addressed, one {prev,next} record per page,
// so the registry never aliases the memory it accounts for and a
// member can be unlinked in O(1) given only its page index.
type flist struct {
	heads  [Maxrank + 1]int64 // head page index per rank, -1 when empty
	counts [Maxrank + 1]int64
	prev   []int64 // per page-index linkage, valid only for members
	next   []int64
}

func newflist(npages int64) *flist {
	fl := &flist{
		prev: make([]int64, npages),
		next: make([]int64, npages),
	}
	for rank := int64(0); rank <= Maxrank; rank++ {
		fl.heads[rank] = -1
	}
	return fl
}

// push block to the head of free list at rank.
func (fl *flist) push(rank, idx int64) {
	head := fl.heads[rank]
	fl.prev[idx], fl.next[idx] = -1, head
	if head >= 0 {
		fl.prev[head] = idx
	}
	fl.heads[rank] = idx
	fl.counts[rank]++
}

// popany remove and return the current head of free list at rank,
// ok is false when the list is empty.
func (fl *flist) popany(rank int64) (idx int64, ok bool) {
	idx = fl.heads[rank]
	if idx < 0 {
		return -1, false
	}
	fl.remove(rank, idx)
	return idx, true
}

// remove a specific member using its stored linkage. Callers confirm
// membership via the page table before calling.
func (fl *flist) remove(rank, idx int64) {
	prv, nxt := fl.prev[idx], fl.next[idx]
	if prv >= 0 {
		fl.next[prv] = nxt
	} else {
		fl.heads[rank] = nxt
	}
	if nxt >= 0 {
		fl.prev[nxt] = prv
	}
	fl.prev[idx], fl.next[idx] = -1, -1
	fl.counts[rank]--
}

func (fl *flist) isempty(rank int64) bool {
	return fl.heads[rank] < 0
}

func (fl *flist) count(rank int64) int64 {
	return fl.counts[rank]
}

// walk call fn for every member of free list at rank, stop when fn
// returns false.
func (fl *flist) walk(rank int64, fn func(idx int64) bool) {
	for idx := fl.heads[rank]; idx >= 0; idx = fl.next[idx] {
		if fn(idx) == false {
			return
		}
	}
}
