package turn

import (
	"math"
	"testing"
)

// stubEntity is a minimal Entity with a scriptable Update.
type stubEntity struct {
	name     string
	wait     float64
	updates  int
	onUpdate func(e *stubEntity)
}

func (e *stubEntity) WaitTime() float64     { return e.wait }
func (e *stubEntity) SetWaitTime(t float64) { e.wait = t }

func (e *stubEntity) Update() {
	e.updates++
	if e.onUpdate != nil {
		e.onUpdate(e)
	}
}

// delay returns an update func that resets the entity's wait time to d.
func delay(d float64) func(e *stubEntity) {
	return func(e *stubEntity) { e.wait = d }
}

func TestRunEmptyIsNoOp(t *testing.T) {
	s := NewScheduler()

	s.Run()

	if s.IsPaused() {
		t.Error("IsPaused() should stay false after running empty")
	}
	if s.Clock() != 0 {
		t.Errorf("Clock() = %v, expected 0", s.Clock())
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestRunAdvancesClockByMinimum(t *testing.T) {
	s := NewScheduler()
	a := &stubEntity{name: "a", wait: 3, onUpdate: delay(10)}
	b := &stubEntity{name: "b", wait: 1, onUpdate: delay(10)}
	c := &stubEntity{name: "c", wait: 5, onUpdate: delay(10)}
	s.AddAll([]Entity{a, b, c})

	s.Run()

	// Every surviving entity lost exactly the pre-call minimum.
	if a.wait != 2 {
		t.Errorf("a.wait = %v, expected 2", a.wait)
	}
	if c.wait != 4 {
		t.Errorf("c.wait = %v, expected 4", c.wait)
	}
	if b.updates != 1 {
		t.Errorf("b.updates = %d, expected 1", b.updates)
	}
	if s.Clock() != 1 {
		t.Errorf("Clock() = %v, expected 1", s.Clock())
	}
}

// The canonical pass: A=3, B=1, C=5. One Run consumes 1 tick, B acts and
// fails to raise its wait time, so it is bumped to one past its value at
// activation. Final state: A=2, C=4, B=1.
func TestRunAntiDeadlockBump(t *testing.T) {
	s := NewScheduler()
	a := &stubEntity{name: "a", wait: 3, onUpdate: delay(10)}
	b := &stubEntity{name: "b", wait: 1, onUpdate: delay(0)}
	c := &stubEntity{name: "c", wait: 5, onUpdate: delay(10)}
	s.AddAll([]Entity{a, b, c})

	s.Run()

	if b.updates != 1 {
		t.Fatalf("b.updates = %d, expected 1", b.updates)
	}
	if b.wait != 1 {
		t.Errorf("b.wait = %v, expected bump to 1", b.wait)
	}
	if a.wait != 2 || c.wait != 4 {
		t.Errorf("a.wait, c.wait = %v, %v, expected 2, 4", a.wait, c.wait)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3 (b re-inserted)", s.Len())
	}
}

func TestRunBumpIsExactlyOne(t *testing.T) {
	tests := []struct {
		name     string
		reset    float64 // wait time Update leaves behind
		expected float64 // wait time after the pass
	}{
		{"update leaves wait unchanged", 0, 1},
		{"update lowers wait", -3, 1},
		{"update raises wait", 6, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScheduler()
			e := &stubEntity{wait: 2, onUpdate: delay(tc.reset)}
			s.Add(e)

			s.Run()

			if e.wait != tc.expected {
				t.Errorf("wait after Run = %v, expected %v", e.wait, tc.expected)
			}
		})
	}
}

func TestRunActivatesTiesInSamePass(t *testing.T) {
	s := NewScheduler()
	a := &stubEntity{name: "a", wait: 2, onUpdate: delay(9)}
	b := &stubEntity{name: "b", wait: 2, onUpdate: delay(9)}
	slow := &stubEntity{name: "slow", wait: 8, onUpdate: delay(9)}
	s.AddAll([]Entity{a, b, slow})

	s.Run()

	if a.updates != 1 || b.updates != 1 {
		t.Errorf("updates = %d, %d, expected both tied entities to act in one pass", a.updates, b.updates)
	}
	if slow.updates != 0 {
		t.Errorf("slow.updates = %d, expected 0", slow.updates)
	}
}

func TestRunActivationOrderIsStable(t *testing.T) {
	s := NewScheduler()
	var order []string
	record := func(e *stubEntity) {
		order = append(order, e.name)
		e.wait = 5
	}

	first := &stubEntity{name: "first", wait: 1, onUpdate: record}
	second := &stubEntity{name: "second", wait: 1, onUpdate: record}
	third := &stubEntity{name: "third", wait: 1, onUpdate: record}
	s.AddAll([]Entity{first, second, third})

	s.Run()

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("activation count = %d, expected %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("activation order = %v, expected %v", order, want)
			break
		}
	}
}

func TestPauseSemantics(t *testing.T) {
	s := NewScheduler()
	e := &stubEntity{wait: 1, onUpdate: delay(5)}
	s.Add(e)

	s.Pause()
	if !s.IsPaused() {
		t.Fatal("IsPaused() should be true after Pause")
	}

	for i := 0; i < 3; i++ {
		s.Run()
	}
	if e.updates != 0 || e.wait != 1 || s.Clock() != 0 {
		t.Errorf("paused Run changed state: updates=%d wait=%v clock=%v", e.updates, e.wait, s.Clock())
	}

	s.Resume()
	s.Run()
	if e.updates != 1 {
		t.Errorf("updates after Resume+Run = %d, expected 1", e.updates)
	}
	if s.Clock() != 1 {
		t.Errorf("Clock() = %v, expected 1", s.Clock())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewScheduler()
	e := &stubEntity{wait: 2}
	s.Add(e)

	s.Remove(e)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, expected 0", s.Len())
	}
	// Removing again must not blow up or change anything.
	s.Remove(e)
	if s.Len() != 0 {
		t.Errorf("Len() = %d after double Remove, expected 0", s.Len())
	}
}

func TestRemoveDuringAnotherUpdate(t *testing.T) {
	s := NewScheduler()
	victim := &stubEntity{name: "victim", wait: 1, onUpdate: delay(5)}
	killer := &stubEntity{name: "killer", wait: 1}
	killer.onUpdate = func(e *stubEntity) {
		s.Remove(victim)
		e.wait = 5
	}
	// Killer inserted first so it activates before the victim.
	s.AddAll([]Entity{killer, victim})

	s.Run()

	if victim.updates != 0 {
		t.Errorf("victim.updates = %d, expected 0 (removed before its turn)", victim.updates)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestRemovePendingEntityDuringPass(t *testing.T) {
	s := NewScheduler()
	early := &stubEntity{name: "early", wait: 1, onUpdate: delay(5)}
	late := &stubEntity{name: "late", wait: 1}
	late.onUpdate = func(e *stubEntity) {
		// early has already acted and sits on the pending list.
		s.Remove(early)
		e.wait = 5
	}
	s.AddAll([]Entity{early, late})

	s.Run()

	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1 (pending removal reconciled)", s.Len())
	}
	s.Run()
	if early.updates != 1 {
		t.Errorf("early.updates = %d, expected 1 (never re-inserted)", early.updates)
	}
}

func TestAddDuringUpdate(t *testing.T) {
	s := NewScheduler()
	child := &stubEntity{name: "child", wait: 2, onUpdate: delay(5)}
	parent := &stubEntity{name: "parent", wait: 1}
	parent.onUpdate = func(e *stubEntity) {
		if e.updates == 1 {
			s.Add(child)
		}
		e.wait = 5
	}
	s.Add(parent)

	s.Run()
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 after mid-pass Add", s.Len())
	}

	s.Run()
	if child.updates != 1 {
		t.Errorf("child.updates = %d, expected 1", child.updates)
	}
}

func TestClockAccumulatesAcrossPasses(t *testing.T) {
	s := NewScheduler()
	e := &stubEntity{wait: 3, onUpdate: delay(4)}
	s.Add(e)

	s.Run() // consumes 3
	s.Run() // consumes 4
	s.Run() // consumes 4

	if s.Clock() != 11 {
		t.Errorf("Clock() = %v, expected 11", s.Clock())
	}
}

func TestClearEmptiesQueue(t *testing.T) {
	s := NewScheduler()
	s.AddAll([]Entity{
		&stubEntity{wait: 1},
		&stubEntity{wait: 2},
	})

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
	s.Run() // must be a no-op, not a panic
}

func TestAddNormalizesNaNWait(t *testing.T) {
	s := NewScheduler()
	e := &stubEntity{wait: math.NaN(), onUpdate: delay(3)}
	s.Add(e)

	if e.wait != 0 {
		t.Fatalf("wait after Add = %v, expected NaN normalized to 0", e.wait)
	}

	s.Run()
	if e.updates != 1 {
		t.Errorf("updates = %d, expected immediate activation", e.updates)
	}
}

// Fast entities act proportionally more often than slow ones.
func TestTemporalFairness(t *testing.T) {
	s := NewScheduler()
	fast := &stubEntity{name: "fast", wait: 1, onUpdate: delay(1)}
	slow := &stubEntity{name: "slow", wait: 4, onUpdate: delay(4)}
	s.AddAll([]Entity{fast, slow})

	for i := 0; i < 100; i++ {
		s.Run()
	}

	if fast.updates < 3*slow.updates {
		t.Errorf("fast acted %d times vs slow %d, expected roughly 4x", fast.updates, slow.updates)
	}
	if slow.updates == 0 {
		t.Error("slow entity starved")
	}
}
