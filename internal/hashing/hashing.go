package hashing

// PerftTable memoizes perft subtree sizes by position key and depth.
type PerftTable struct {
	// entries maps a position and remaining depth to its node count
	entries map[tableKey]uint64
	// maxCapacity bounds the number of entries; 0 means unlimited
	maxCapacity int
	hits        int
	misses      int
}

type tableKey struct {
	hash  uint64
	depth int
}

// NewPerftTable creates an empty table.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &PerftTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for a position at a depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records a node count. Once the table is full new positions are
// dropped; existing entries are still overwritten.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	key := tableKey{hash, depth}
	if _, exists := t.entries[key]; !exists && t.IsFull() {
		return
	}
	t.entries[key] = nodes
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Stats returns the lookup hit and miss counts.
func (t *PerftTable) Stats() (hits, misses int) {
	return t.hits, t.misses
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table and its statistics.
func (t *PerftTable) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits, t.misses = 0, 0
}
