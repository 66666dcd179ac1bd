// Package pq provides the min-priority queue used by the weighted searches.
//
// The queue follows the "lazy decrease-key" pattern: when a better priority
// is found for a node already queued, a new entry is pushed and the old one
// stays in the heap. Callers recognise such stale entries when they pop them.
//
// Entries with equal priority pop in insertion order, which keeps results
// reproducible without requiring an ordering on node identifiers.
package pq

import "container/heap"

// Item is a queued node with its priority.
type Item[K comparable] struct {
	ID       K
	Priority float64
	seq      uint64 // insertion order, breaks priority ties
}

// Queue is a min-heap of Items ordered by Priority, then insertion order.
// The zero value is ready to use.
type Queue[K comparable] struct {
	items items[K]
	seq   uint64
}

// New returns an empty Queue with room for capacity items.
func New[K comparable](capacity int) *Queue[K] {
	return &Queue[K]{items: make(items[K], 0, capacity)}
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue[K]) Len() int { return len(q.items) }

// Push queues id with the given priority. Complexity: O(log n).
func (q *Queue[K]) Push(id K, priority float64) {
	heap.Push(&q.items, Item[K]{ID: id, Priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the entry with the smallest priority.
// It panics on an empty queue; check Len first. Complexity: O(log n).
func (q *Queue[K]) Pop() Item[K] {
	return heap.Pop(&q.items).(Item[K])
}

// Peek returns the entry with the smallest priority without removing it.
func (q *Queue[K]) Peek() (Item[K], bool) {
	if len(q.items) == 0 {
		return Item[K]{}, false
	}

	return q.items[0], true
}

// items implements heap.Interface.
type items[K comparable] []Item[K]

func (h items[K]) Len() int { return len(h) }

func (h items[K]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h items[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *items[K]) Push(x any) { *h = append(*h, x.(Item[K])) }

func (h *items[K]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
