package turn

import (
	"math"
	"math/rand"
	"testing"
)

// keyed is a minimal queue element for tests.
type keyed struct {
	name string
	key  float64
}

func newKeyedQueue() *Queue[*keyed] {
	return NewQueue[*keyed](func(k *keyed) float64 { return k.key })
}

func TestQueuePopOrder(t *testing.T) {
	q := newKeyedQueue()
	keys := []float64{5, 1, 4, 2, 3}
	for _, k := range keys {
		q.Push(&keyed{key: k})
	}

	if q.Len() != len(keys) {
		t.Fatalf("Len() = %d, expected %d", q.Len(), len(keys))
	}

	for want := 1.0; want <= 5.0; want++ {
		v, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() empty at key %v", want)
		}
		if v.key != want {
			t.Errorf("Pop() key = %v, expected %v", v.key, want)
		}
	}

	if !q.IsEmpty() {
		t.Error("queue should be empty after popping everything")
	}
}

func TestQueueEmptyPopPeek(t *testing.T) {
	q := newKeyedQueue()

	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should report false")
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek() on empty queue should report false")
	}
}

func TestQueuePeekDoesNotRemove(t *testing.T) {
	q := newKeyedQueue()
	q.Push(&keyed{name: "a", key: 2})
	q.Push(&keyed{name: "b", key: 1})

	v, ok := q.Peek()
	if !ok || v.name != "b" {
		t.Fatalf("Peek() = %v, %v, expected element b", v, ok)
	}
	if q.Len() != 2 {
		t.Errorf("Len() after Peek = %d, expected 2", q.Len())
	}
}

func TestQueueTieBreakInsertionOrder(t *testing.T) {
	q := newKeyedQueue()
	names := []string{"first", "second", "third", "fourth"}
	for _, n := range names {
		q.Push(&keyed{name: n, key: 7})
	}

	for _, want := range names {
		v, _ := q.Pop()
		if v.name != want {
			t.Errorf("Pop() = %q, expected %q (stable tie order)", v.name, want)
		}
	}
}

func TestQueuePushAllPreservesOrderOnTies(t *testing.T) {
	q := newKeyedQueue()
	q.Push(&keyed{name: "early", key: 1})

	batch := []*keyed{
		{name: "x", key: 3},
		{name: "y", key: 3},
		{name: "z", key: 3},
	}
	q.PushAll(batch)

	want := []string{"early", "x", "y", "z"}
	for _, n := range want {
		v, _ := q.Pop()
		if v.name != n {
			t.Errorf("Pop() = %q, expected %q", v.name, n)
		}
	}
}

func TestQueueAt(t *testing.T) {
	q := newKeyedQueue()
	seen := make(map[string]bool)
	for _, n := range []string{"a", "b", "c", "d"} {
		q.Push(&keyed{name: n, key: float64(len(n))})
		seen[n] = false
	}

	// At must expose every element exactly once across 0..Len()-1.
	for i := 0; i < q.Len(); i++ {
		v := q.At(i)
		if seen[v.name] {
			t.Errorf("At() yielded %q twice", v.name)
		}
		seen[v.name] = true
	}
	for n, ok := range seen {
		if !ok {
			t.Errorf("At() never yielded %q", n)
		}
	}

	// Rank 0 is the heap minimum.
	front, _ := q.Peek()
	if q.At(0) != front {
		t.Error("At(0) should equal Peek()")
	}
}

func TestQueueRemove(t *testing.T) {
	q := newKeyedQueue()
	a := &keyed{name: "a", key: 1}
	b := &keyed{name: "b", key: 2}
	c := &keyed{name: "c", key: 3}
	q.PushAll([]*keyed{a, b, c})

	if !q.Remove(b) {
		t.Fatal("Remove(b) should report true for a present element")
	}
	if q.Len() != 2 {
		t.Errorf("Len() after Remove = %d, expected 2", q.Len())
	}

	// Absent element: silent no-op.
	if q.Remove(b) {
		t.Error("Remove(b) twice should report false")
	}
	if q.Len() != 2 {
		t.Errorf("Len() after absent Remove = %d, expected 2", q.Len())
	}

	// Subsequent pops never yield the removed element.
	for !q.IsEmpty() {
		v, _ := q.Pop()
		if v == b {
			t.Error("Pop() yielded a removed element")
		}
	}
}

func TestQueueClear(t *testing.T) {
	q := newKeyedQueue()
	q.PushAll([]*keyed{{key: 1}, {key: 2}})

	q.Clear()
	if !q.IsEmpty() || q.Len() != 0 {
		t.Errorf("queue not empty after Clear: Len() = %d", q.Len())
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() after Clear should report false")
	}
}

func TestQueueNaNKeySinksToBack(t *testing.T) {
	q := newKeyedQueue()
	bad := &keyed{name: "bad", key: math.NaN()}
	q.Push(bad)
	q.Push(&keyed{name: "ok1", key: 2})
	q.Push(&keyed{name: "ok2", key: 1})

	// Well-formed keys come out first, in order; the NaN element is
	// still present and pops last rather than corrupting the heap.
	var names []string
	for !q.IsEmpty() {
		v, _ := q.Pop()
		names = append(names, v.name)
	}
	want := []string{"ok2", "ok1", "bad"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("pop order = %v, expected %v", names, want)
		}
	}
}

// TestQueueRandomizedAgainstReference runs a random push/pop/remove
// sequence against a naive reference that keeps elements in insertion
// order and extracts by minimum key, earliest-inserted first.
func TestQueueRandomizedAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := newKeyedQueue()
	var ref []*keyed

	refPop := func() *keyed {
		best := 0
		for i, e := range ref {
			if e.key < ref[best].key {
				best = i
			}
		}
		v := ref[best]
		ref = append(ref[:best], ref[best+1:]...)
		return v
	}

	for op := 0; op < 5000; op++ {
		switch r := rng.Intn(10); {
		case r < 6: // push
			e := &keyed{key: float64(rng.Intn(50))}
			q.Push(e)
			ref = append(ref, e)
		case r < 9: // pop
			got, ok := q.Pop()
			if len(ref) == 0 {
				if ok {
					t.Fatalf("op %d: Pop() reported ok on empty queue", op)
				}
				continue
			}
			want := refPop()
			if !ok || got != want {
				t.Fatalf("op %d: Pop() = %v, expected %v", op, got, want)
			}
		default: // remove a random live element
			if len(ref) == 0 {
				continue
			}
			i := rng.Intn(len(ref))
			e := ref[i]
			ref = append(ref[:i], ref[i+1:]...)
			if !q.Remove(e) {
				t.Fatalf("op %d: Remove() of a present element reported false", op)
			}
		}

		if q.Len() != len(ref) {
			t.Fatalf("op %d: Len() = %d, reference has %d", op, q.Len(), len(ref))
		}
	}

	// Drain and verify the tail.
	for len(ref) > 0 {
		got, ok := q.Pop()
		want := refPop()
		if !ok || got != want {
			t.Fatalf("drain: Pop() = %v, expected %v", got, want)
		}
	}
}
