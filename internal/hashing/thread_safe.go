package hashing

import "sync"

// ThreadSafePerftTable wraps PerftTable with mutex protection for concurrent access.
type ThreadSafePerftTable struct {
	table *PerftTable
	mu    sync.RWMutex
}

// NewThreadSafePerftTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftTable(maxCapacity int) *ThreadSafePerftTable {
	return &ThreadSafePerftTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Lookup returns the stored node count for a position at a depth.
// It takes the write lock because it updates the hit statistics.
func (t *ThreadSafePerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(hash, depth)
}

// Store records a node count.
func (t *ThreadSafePerftTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafePerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Stats returns the lookup hit and miss counts.
func (t *ThreadSafePerftTable) Stats() (hits, misses int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Stats()
}

// LoadFromTable copies entries from an existing table. Call before concurrent use.
func (t *ThreadSafePerftTable) LoadFromTable(other *PerftTable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, nodes := range other.entries {
		t.table.Store(key.hash, key.depth, nodes)
	}
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafePerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}
