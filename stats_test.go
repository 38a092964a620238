package buddy

import "testing"

func TestStats(t *testing.T) {
	arena := testarena(t, 8)
	addr, err := arena.Alloc(1)
	if err != nil {
		t.Fatalf("Alloc(1): %v", err)
	}
	stats := arena.Stats()
	if x := stats["n_allocs"].(int64); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x = stats["n_frees"].(int64); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if x = stats["n_splits"].(int64); x != 3 {
		t.Errorf("expected %v, got %v", 3, x)
	} else if x = stats["npages"].(int64); x != 8 {
		t.Errorf("expected %v, got %v", 8, x)
	} else if x = stats["allocated"].(int64); x != Defaultpagesize {
		t.Errorf("expected %v, got %v", Defaultpagesize, x)
	} else if x = stats["freelist.3"].(int64); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	}

	if err := arena.Free(addr); err != nil {
		t.Fatalf("Free(): %v", err)
	}
	stats = arena.Stats()
	if x := stats["n_frees"].(int64); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x = stats["n_merges"].(int64); x != 3 {
		t.Errorf("expected %v, got %v", 3, x)
	} else if x = stats["allocated"].(int64); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}

	LogComponents("buddy")
	arena.Logstatistics() // should not panic
}
