package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{ScenarioID: "skirmish", Turns: 120, Clock: 480, Spawned: 14, Slain: 10, Survivors: 4, Winner: "orc", Duration: 12},
		{ScenarioID: "skirmish", Turns: 80, Clock: 310, Spawned: 14, Slain: 14, Survivors: 0, Duration: 8},
		{ScenarioID: "swarm", Turns: 300, Clock: 1200, Spawned: 15, Slain: 14, Survivors: 1, Winner: "ogre", Duration: 30},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("skirmish", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 skirmish runs, got %d", len(got))
	}
	// Most recent first
	if got[0].Turns != 80 {
		t.Errorf("Expected most recent run first (80 turns), got %d", got[0].Turns)
	}
	if got[0].Winner != "" {
		t.Errorf("Expected empty winner for wiped run, got %q", got[0].Winner)
	}
	if got[1].Winner != "orc" {
		t.Errorf("Expected winner orc, got %q", got[1].Winner)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs across scenarios, got %d", len(all))
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{ScenarioID: "siege", Turns: (i + 1) * 10, Clock: float64(i) * 40})
	}

	runs, err := store.RecentRuns("siege", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
}

func TestStoreScenarioStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{ScenarioID: "skirmish", Turns: 100, Clock: 400, Slain: 6})
	store.SaveRun(RunRecord{ScenarioID: "skirmish", Turns: 200, Clock: 800, Slain: 10})

	stats, err := store.ScenarioStats("skirmish")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.AvgTurns != 150 {
		t.Errorf("Expected avg turns 150, got %v", stats.AvgTurns)
	}
	if stats.AvgClock != 600 {
		t.Errorf("Expected avg clock 600, got %v", stats.AvgClock)
	}
	if stats.TotalSlain != 16 {
		t.Errorf("Expected total slain 16, got %d", stats.TotalSlain)
	}
}

func TestStoreScenarioStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.ScenarioStats("nope")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.AvgTurns != 0 || stats.TotalSlain != 0 {
		t.Errorf("Expected zeroed stats, got %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{ScenarioID: "skirmish", Turns: 10})
	store.SaveRun(RunRecord{ScenarioID: "swarm", Turns: 20})

	if err := store.ClearRuns("skirmish"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns("skirmish", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no skirmish runs after clear, got %d", len(runs))
	}

	others, _ := store.RecentRuns("swarm", 10)
	if len(others) != 1 {
		t.Errorf("Clear removed runs of another scenario")
	}
}
