package hashing

import (
	"sync"
	"testing"
)

func TestThreadSafePerftTable_Concurrent(t *testing.T) {
	table := NewThreadSafePerftTable(0)

	const numWorkers = 10
	const entriesPerWorker = 100

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * entriesPerWorker
			for j := start; j < start+entriesPerWorker; j++ {
				table.Store(uint64(j), 1, uint64(j*2))
			}
		}(i)
	}
	wg.Wait()

	if table.Len() != numWorkers*entriesPerWorker {
		t.Errorf("Expected %d entries, got %d", numWorkers*entriesPerWorker, table.Len())
	}

	for j := 0; j < numWorkers*entriesPerWorker; j++ {
		nodes, ok := table.Lookup(uint64(j), 1)
		if !ok || nodes != uint64(j*2) {
			t.Fatalf("Lookup(%d) = %d, %v; want %d, true", j, nodes, ok, j*2)
		}
	}
}

func TestThreadSafePerftTable_NoRace(t *testing.T) {
	table := NewThreadSafePerftTable(0)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			table.Store(7, 2, 400)
			_, _ = table.Lookup(7, 2)
			_ = table.Len()
			_, _ = table.Stats()
		}(i)
	}
	wg.Wait()

	hits, misses := table.Stats()
	if hits+misses != 100 {
		t.Errorf("Expected 100 lookups, got %d", hits+misses)
	}
}

func TestThreadSafePerftTable_LoadFromTable(t *testing.T) {
	regular := NewPerftTable(0)
	regular.Store(99, 3, 8902)

	threadSafe := NewThreadSafePerftTable(0)
	threadSafe.LoadFromTable(regular)

	nodes, ok := threadSafe.Lookup(99, 3)
	if !ok || nodes != 8902 {
		t.Errorf("Lookup after load = %d, %v; want 8902, true", nodes, ok)
	}
}

func TestThreadSafePerftTable_MaxCapacity(t *testing.T) {
	const capacity = 50
	table := NewThreadSafePerftTable(capacity)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				table.Store(uint64(workerID*100+j), 1, 1)
			}
		}(i)
	}
	wg.Wait()

	if !table.IsFull() {
		t.Error("Expected table to be full")
	}
	if table.Len() != capacity {
		t.Errorf("Len() = %d; want %d", table.Len(), capacity)
	}
}
