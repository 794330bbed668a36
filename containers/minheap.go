package containers

import (
	"container/heap"
	"fmt"

	"golang.org/x/exp/constraints"
)

// MinHeap is a binary min-heap of items ordered by a key of type K.
// The key is copied when the item is pushed, so later changes to whatever the
// key was derived from do not disturb the heap order.
type MinHeap[T any, K constraints.Ordered] struct {
	entries heapEntries[T, K]
}

// NewMinHeap returns an empty heap with room for capacity entries.
func NewMinHeap[T any, K constraints.Ordered](capacity int) *MinHeap[T, K] {
	if capacity < 0 {
		capacity = 0
	}

	return &MinHeap[T, K]{entries: make(heapEntries[T, K], 0, capacity)}
}

// Push inserts item with the given key. Complexity: O(log n).
func (h *MinHeap[T, K]) Push(item T, key K) {
	heap.Push(&h.entries, heapEntry[T, K]{item: item, key: key})
}

// Pop removes and returns the item with the smallest key.
// Returns ErrEmptyContainer if the heap is empty. Complexity: O(log n).
func (h *MinHeap[T, K]) Pop() (T, error) {
	if len(h.entries) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: pop from empty heap", ErrEmptyContainer)
	}
	e := heap.Pop(&h.entries).(heapEntry[T, K])

	return e.item, nil
}

// Peek returns the item with the smallest key and that key, without removing it.
func (h *MinHeap[T, K]) Peek() (T, K, error) {
	if len(h.entries) == 0 {
		var (
			zero T
			k    K
		)
		return zero, k, fmt.Errorf("%w: peek on empty heap", ErrEmptyContainer)
	}

	return h.entries[0].item, h.entries[0].key, nil
}

// Len returns the number of entries, stale duplicates included.
func (h *MinHeap[T, K]) Len() int { return len(h.entries) }

// IsEmpty reports whether the heap holds no entries.
func (h *MinHeap[T, K]) IsEmpty() bool { return len(h.entries) == 0 }

// Clear drops every entry but keeps the backing array for reuse.
func (h *MinHeap[T, K]) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
}

// heapEntry pairs an item with the key it was pushed under.
type heapEntry[T any, K constraints.Ordered] struct {
	item T
	key  K
}

// heapEntries implements heap.Interface ordered by key ascending.
type heapEntries[T any, K constraints.Ordered] []heapEntry[T, K]

func (e heapEntries[T, K]) Len() int           { return len(e) }
func (e heapEntries[T, K]) Less(i, j int) bool { return e[i].key < e[j].key }
func (e heapEntries[T, K]) Swap(i, j int)      { e[i], e[j] = e[j], e[i] }

// Push is called by heap.Push; x must be a heapEntry[T, K].
func (e *heapEntries[T, K]) Push(x any) { *e = append(*e, x.(heapEntry[T, K])) }

// Pop is called by heap.Pop and returns the last element.
func (e *heapEntries[T, K]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	var zero heapEntry[T, K]
	old[n-1] = zero
	*e = old[:n-1]

	return item
}
