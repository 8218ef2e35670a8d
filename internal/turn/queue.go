// Package turn implements the cooperative turn scheduler at the heart of
// the simulation: a key-function min-heap and a scheduler that advances a
// shared virtual clock, activating each entity when its wait time runs out.
// It contains no external dependencies (especially no Bubble Tea) to keep
// the scheduling logic pure and testable.
package turn

import "math"

// Queue is a mutable priority queue implemented as an array-backed binary
// min-heap. Ordering is defined by a key function supplied at construction
// and re-read on every comparison, so callers may mutate keys between
// discrete queue operations (never while an operation is in progress).
//
// Ties are broken by insertion order: of two elements with equal keys, the
// one pushed earlier pops first. This keeps activation order deterministic
// for a given insertion history.
type Queue[T comparable] struct {
	key   func(T) float64
	items []queueItem[T]
	seq   uint64
}

// queueItem pairs an element with its insertion sequence number.
type queueItem[T comparable] struct {
	value T
	seq   uint64
}

// NewQueue creates an empty queue ordered by the given key function.
func NewQueue[T comparable](key func(T) float64) *Queue[T] {
	return &Queue[T]{key: key}
}

// keyAt reads the current key of the element at index i.
// NaN keys are treated as +Inf so a malformed key sinks to the back of the
// heap instead of corrupting comparisons.
func (q *Queue[T]) keyAt(i int) float64 {
	k := q.key(q.items[i].value)
	if math.IsNaN(k) {
		return math.Inf(1)
	}
	return k
}

// less reports whether the element at i must sort before the element at j.
func (q *Queue[T]) less(i, j int) bool {
	ki, kj := q.keyAt(i), q.keyAt(j)
	if ki != kj {
		return ki < kj
	}
	return q.items[i].seq < q.items[j].seq
}

// Push inserts an element in O(log n).
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, queueItem[T]{value: v, seq: q.seq})
	q.seq++
	q.siftUp(len(q.items) - 1)
}

// PushAll inserts every element of vs, preserving slice order among
// equal keys.
func (q *Queue[T]) PushAll(vs []T) {
	for _, v := range vs {
		q.Push(v)
	}
}

// Pop removes and returns the minimum-key element.
// Returns the zero value and false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	v := q.items[0].value
	q.removeAt(0)
	return v, true
}

// Peek returns the minimum-key element without removing it.
// Returns the zero value and false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0].value, true
}

// At returns the element at the given heap rank without removing it.
// Valid ranks are 0..Len()-1; anything else panics. Rank order is heap
// layout, not sorted order — At exists so the scheduler can visit every
// element once without pop/push churn.
func (q *Queue[T]) At(i int) T {
	return q.items[i].value
}

// Remove deletes a specific element by identity, wherever it sits in the
// heap. Returns false if the element is not present.
func (q *Queue[T]) Remove(v T) bool {
	for i := range q.items {
		if q.items[i].value == v {
			q.removeAt(i)
			return true
		}
	}
	return false
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	for i := range q.items {
		var zero queueItem[T]
		q.items[i] = zero
	}
	q.items = q.items[:0]
}

// removeAt deletes the element at index i: swap with the last element,
// truncate, then restore the heap property around the replacement.
func (q *Queue[T]) removeAt(i int) {
	last := len(q.items) - 1
	q.items[i] = q.items[last]
	var zero queueItem[T]
	q.items[last] = zero
	q.items = q.items[:last]

	if i < last {
		// The replacement may be out of order in either direction.
		q.siftDown(i)
		q.siftUp(i)
	}
}

// siftUp moves the element at index i toward the root until its parent's
// key is no larger.
func (q *Queue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// siftDown moves the element at index i toward the leaves until both
// children have keys at least as large.
func (q *Queue[T]) siftDown(i int) {
	n := len(q.items)
	for {
		smallest := i
		if l := 2*i + 1; l < n && q.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && q.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
