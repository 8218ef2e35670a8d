package turn

import "math"

// Entity is implemented by anything the scheduler can drive: a value with
// a mutable wait time and an Update side effect.
//
// Contract: when Update returns, the entity must have left itself with a
// strictly larger wait time than it had at call entry. An entity that
// fails to do so is not an error — the scheduler bumps its wait time to
// one past the entry value so it cannot starve the rest of the queue.
type Entity interface {
	// WaitTime returns the logical ticks remaining until the entity may
	// act again. Decremented by the scheduler, reset inside Update.
	WaitTime() float64

	// SetWaitTime overwrites the remaining wait time.
	SetWaitTime(t float64)

	// Update performs the entity's turn. Runs to completion; must not
	// call back into the scheduler's Run.
	Update()
}

// Scheduler decides activation order among independently-timed entities
// and advances the shared virtual clock. Each Run pass subtracts the
// minimum pending wait time from every queued entity, then activates
// every entity whose wait time has reached zero.
//
// Single-threaded and non-reentrant: Run is driven synchronously by the
// frame loop, and entity Update calls must not invoke Run.
type Scheduler struct {
	queue  *Queue[Entity]
	paused bool
	clock  float64

	// pending holds entities activated during the current Run pass,
	// awaiting bulk re-insertion. Kept on the struct so Remove can
	// reconcile against it when an entity retires mid-pass.
	pending []Entity
}

// NewScheduler creates an empty, unpaused scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		queue: NewQueue[Entity](Entity.WaitTime),
	}
}

// Add inserts an entity into the queue. A NaN wait time is normalized to
// zero rather than trusted, so it can never disturb heap ordering.
func (s *Scheduler) Add(e Entity) {
	if math.IsNaN(e.WaitTime()) {
		e.SetWaitTime(0)
	}
	s.queue.Push(e)
}

// AddAll inserts every entity of es.
func (s *Scheduler) AddAll(es []Entity) {
	for _, e := range es {
		s.Add(e)
	}
}

// Remove retires an entity from scheduling. Idempotent: removing an
// entity that is not scheduled is a no-op. An entity already activated in
// the current Run pass is dropped from the pending re-insertion list
// instead, so a death during another entity's turn sticks.
func (s *Scheduler) Remove(e Entity) {
	if s.queue.Remove(e) {
		return
	}
	for i, p := range s.pending {
		if p == e {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Clear empties the queue. Used on session reset.
func (s *Scheduler) Clear() {
	s.queue.Clear()
}

// Pause suspends scheduling; Run becomes a no-op until Resume.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume re-enables scheduling.
func (s *Scheduler) Resume() {
	s.paused = false
}

// IsPaused reports whether the scheduler is paused.
func (s *Scheduler) IsPaused() bool {
	return s.paused
}

// Len returns the number of scheduled entities.
func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// Clock returns the cumulative virtual time consumed across all Run
// passes. It advances only through Run, never by wall-clock time.
func (s *Scheduler) Clock() float64 {
	return s.clock
}

// Run performs one scheduling pass:
//
//  1. No-op when paused or empty.
//  2. Read elapsed = the minimum wait time in the queue.
//  3. If elapsed > 0, subtract it from every queued entity at once.
//  4. Pop and activate every entity whose wait time is now <= 0,
//     bumping any entity whose Update failed to raise its own wait time.
//  5. Bulk-reinsert the activated entities.
//
// Every entity that reaches the post-decrement minimum activates in this
// same pass, never a later one. Activated entities are collected rather
// than re-pushed immediately so the heap minimum stays stable while the
// activation loop is still reading it.
func (s *Scheduler) Run() {
	if s.paused || s.queue.IsEmpty() {
		return
	}

	front, _ := s.queue.Peek()
	elapsed := front.WaitTime()
	if elapsed > 0 {
		// Subtracting the same amount from every key preserves heap
		// order, so mutating in place through At is safe.
		for i := 0; i < s.queue.Len(); i++ {
			e := s.queue.At(i)
			e.SetWaitTime(e.WaitTime() - elapsed)
		}
		s.clock += elapsed
	}

	for {
		next, ok := s.queue.Peek()
		if !ok || next.WaitTime() > 0 {
			break
		}
		e, _ := s.queue.Pop()
		old := e.WaitTime()
		e.Update()
		if e.WaitTime() <= old {
			// Anti-deadlock bump: an entity whose turn did not cost
			// anything would otherwise act forever.
			e.SetWaitTime(old + 1)
		}
		s.pending = append(s.pending, e)
	}

	if len(s.pending) > 0 {
		s.queue.PushAll(s.pending)
		for i := range s.pending {
			s.pending[i] = nil
		}
		s.pending = s.pending[:0]
	}
}
