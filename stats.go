package buddy

import "fmt"
import "strings"
import "encoding/json"

import gohumanize "github.com/dustin/go-humanize"

// Stats return a flat map of arena statistics, counters since
// construction and the current per-rank free-list census.
func (arena *Arena) Stats() map[string]interface{} {
	stats := map[string]interface{}{}
	stats["n_allocs"] = arena.n_allocs
	stats["n_frees"] = arena.n_frees
	stats["n_splits"] = arena.n_splits
	stats["n_merges"] = arena.n_merges
	capacity, allocated, available := arena.Info()
	stats["capacity"] = capacity
	stats["allocated"] = allocated
	stats["available"] = available
	stats["npages"] = arena.npages
	stats["pagesize"] = arena.pagesize
	for rank := int64(1); rank <= Maxrank; rank++ {
		key := fmt.Sprintf("freelist.%v", rank)
		stats[key] = arena.flists.count(rank)
	}
	return stats
}

// Logstatistics one-shot logging of arena statistics, with byte
// figures humanized.
func (arena *Arena) Logstatistics() {
	stats := arena.Stats()

	capacity := gohumanize.IBytes(uint64(stats["capacity"].(int64)))
	alloc := gohumanize.IBytes(uint64(stats["allocated"].(int64)))
	avail := gohumanize.IBytes(uint64(stats["available"].(int64)))
	fmsg := "%v capacity %v allocated %v available %v\n"
	infof(fmsg, arena.logprefix, capacity, alloc, avail)

	outs := []string{}
	fmsg = "  rank %2v: %v free blocks, %2.2f%% of arena"
	ranks, zs := arena.Utilization()
	for i, rank := range ranks {
		n := arena.flists.count(rank)
		outs = append(outs, fmt.Sprintf(fmsg, rank, n, zs[i]))
	}
	infof("%v free blocks:\n%v\n", arena.logprefix, strings.Join(outs, "\n"))

	text, err := json.Marshal(stats)
	if err != nil {
		panicerr("Logstatistics(): %v", err)
	}
	infof("%v stats %v\n", arena.logprefix, string(text))
}
