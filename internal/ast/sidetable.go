package ast

import "sync"

// SideTable attaches analysis results to nodes without putting references
// into the tree. Entries are keyed by node identity, so two structurally
// equal nodes get separate entries. A SideTable is safe for concurrent use.
type SideTable[V any] struct {
	mu      sync.RWMutex
	entries map[Node]V
}

// NewSideTable creates an empty side table.
func NewSideTable[V any]() *SideTable[V] {
	return &SideTable[V]{entries: make(map[Node]V)}
}

// Set records v for node, replacing any previous entry.
func (t *SideTable[V]) Set(node Node, v V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[node] = v
}

// Get returns the entry for node and whether one exists.
func (t *SideTable[V]) Get(node Node) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[node]
	return v, ok
}

// Delete removes the entry for node.
func (t *SideTable[V]) Delete(node Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, node)
}

// Len returns the number of entries.
func (t *SideTable[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Range calls f for each entry until f returns false. The table is locked
// for reading while Range runs.
func (t *SideTable[V]) Range(f func(Node, V) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for n, v := range t.entries {
		if !f(n, v) {
			return
		}
	}
}
