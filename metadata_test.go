package buddy

import "testing"

func TestNewpagetable(t *testing.T) {
	table := newpagetable(64)
	for idx := int64(0); idx < 64; idx++ {
		if tag, rank := table.get(idx); tag != pgUntracked {
			t.Errorf("expected untracked, got %v", tag)
		} else if rank != 0 {
			t.Errorf("expected %v, got %v", 0, rank)
		}
	}
}

func TestMarkallocated(t *testing.T) {
	table := newpagetable(64)
	table.markallocated(8, 3)
	for idx := int64(8); idx < 12; idx++ {
		if tag, rank := table.get(idx); tag != pgAllocated {
			t.Errorf("page %v expected allocated, got %v", idx, tag)
		} else if rank != 3 {
			t.Errorf("page %v expected rank %v, got %v", idx, 3, rank)
		}
	}
	if tag, _ := table.get(7); tag != pgUntracked {
		t.Errorf("page 7 expected untracked, got %v", tag)
	} else if tag, _ = table.get(12); tag != pgUntracked {
		t.Errorf("page 12 expected untracked, got %v", tag)
	}

	table.clearblock(8, 3)
	for idx := int64(8); idx < 12; idx++ {
		if tag, rank := table.get(idx); tag != pgUntracked || rank != 0 {
			t.Errorf("page %v expected cleared, got {%v,%v}", idx, tag, rank)
		}
	}
}

func TestMarkfreehead(t *testing.T) {
	table := newpagetable(64)
	table.markfreehead(16, 4)
	if tag, rank := table.get(16); tag != pgFreehead {
		t.Errorf("expected freehead, got %v", tag)
	} else if rank != 4 {
		t.Errorf("expected %v, got %v", 4, rank)
	}
	// only the head page is touched.
	for idx := int64(17); idx < 24; idx++ {
		if tag, _ := table.get(idx); tag != pgUntracked {
			t.Errorf("page %v expected untracked, got %v", idx, tag)
		}
	}

	table.clear(16)
	if tag, rank := table.get(16); tag != pgUntracked || rank != 0 {
		t.Errorf("expected cleared, got {%v,%v}", tag, rank)
	}
}

func BenchmarkMarkallocated(b *testing.B) {
	table := newpagetable(65536)
	for i := 0; i < b.N; i++ {
		table.markallocated(0, 8)
	}
}

func BenchmarkMarkfreehead(b *testing.B) {
	table := newpagetable(65536)
	for i := 0; i < b.N; i++ {
		table.markfreehead(0, 8)
	}
}
