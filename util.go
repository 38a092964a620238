package buddy

import "fmt"

import "github.com/bnclabs/gobuddy/lib"

// pagesof number of pages spanned by a block of rank.
func pagesof(rank int64) int64 {
	return 1 << uint64(rank-1)
}

// buddyof head index of the buddy block, flips the size-order bit.
func buddyof(idx, rank int64) int64 {
	return idx ^ pagesof(rank)
}

// maxfit largest rank whose block can start at idx, constrained by
// the buddy alignment of idx and by the pages remaining in the arena.
func maxfit(idx, npages int64) int64 {
	rank := Maxrank
	if idx > 0 {
		if align := int64(lib.Bit64(idx).Findfirstset()) + 1; align < rank {
			rank = align
		}
	}
	for pagesof(rank) > (npages - idx) {
		rank--
	}
	return rank
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
