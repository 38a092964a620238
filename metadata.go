package buddy

// Per-page status tags. Every page of an allocated block carries
// pgAllocated with the block's rank. Only the head page of a free
// block carries pgFreehead, body pages of a free block stay untracked
// and are never read for correctness decisions.
const (
	pgUntracked byte = iota
	pgAllocated
	pgFreehead
)

// pagetable is pure storage, one {tag, rank} entry per page index.
// Callers bounds-check indexes before touching the table.
type pagetable struct {
	tags  []byte
	ranks []byte
}

func newpagetable(npages int64) *pagetable {
	return &pagetable{
		tags:  make([]byte, npages),
		ranks: make([]byte, npages),
	}
}

func (table *pagetable) get(idx int64) (tag byte, rank int64) {
	return table.tags[idx], int64(table.ranks[idx])
}

// markallocated tag every page of the run, any page of a live
// allocation then reports the block's rank.
func (table *pagetable) markallocated(idx, rank int64) {
	till := idx + pagesof(rank)
	for i := idx; i < till; i++ {
		table.tags[i], table.ranks[i] = pgAllocated, byte(rank)
	}
}

// markfreehead tag only the head page, so a merge step never pays
// O(block size) writes.
func (table *pagetable) markfreehead(idx, rank int64) {
	table.tags[idx], table.ranks[idx] = pgFreehead, byte(rank)
}

func (table *pagetable) clear(idx int64) {
	table.tags[idx], table.ranks[idx] = pgUntracked, 0
}

// clearblock untag a whole run, paid once when a block is freed.
func (table *pagetable) clearblock(idx, rank int64) {
	till := idx + pagesof(rank)
	for i := idx; i < till; i++ {
		table.tags[i], table.ranks[i] = pgUntracked, 0
	}
}
