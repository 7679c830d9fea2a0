package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func testRun(placed int, completed bool) RunRecord {
	return RunRecord{
		Width:       200,
		Height:      200,
		Layout:      "center",
		Adjacency:   8,
		SpawnPolicy: "random",
		Seed:        1,
		Target:      4000,
		Placed:      placed,
		Generations: placed,
		Timeouts:    3,
		WalkSteps:   int64(placed) * 900,
		DurationMs:  1200,
		Completed:   completed,
	}
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

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, placed := range []int{100, 4000, 2500} {
		if _, err := store.SaveRun(testRun(placed, placed == 4000)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].Placed != 2500 {
		t.Errorf("Expected most recent run to have 2500 placed, got %d", recent[0].Placed)
	}
	if recent[0].Layout != "center" || recent[0].SpawnPolicy != "random" {
		t.Errorf("Run fields did not round-trip: %+v", recent[0])
	}

	largest, err := store.LargestRuns(2)
	if err != nil {
		t.Fatalf("LargestRuns() failed: %v", err)
	}
	if len(largest) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(largest))
	}
	if largest[0].Placed != 4000 || largest[1].Placed != 2500 {
		t.Errorf("Runs not ordered by placed: %d, %d", largest[0].Placed, largest[1].Placed)
	}
	if !largest[0].Completed {
		t.Error("Completed flag did not round-trip")
	}
}

func TestStoreRunStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty history
	stats, err := store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunCount != 0 || stats.TotalParticles != 0 {
		t.Errorf("Expected zero stats for empty history, got %+v", stats)
	}

	store.SaveRun(testRun(1000, true))
	store.SaveRun(testRun(500, false))

	stats, err = store.GetRunStats()
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.RunCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunCount)
	}
	if stats.CompletedCount != 1 {
		t.Errorf("Expected 1 completed run, got %d", stats.CompletedCount)
	}
	if stats.TotalParticles != 1500 {
		t.Errorf("Expected 1500 total particles, got %d", stats.TotalParticles)
	}
	if stats.TotalWalkSteps != 1500*900 {
		t.Errorf("Expected %d total walk steps, got %d", 1500*900, stats.TotalWalkSteps)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(testRun(100, false))
	store.SaveRun(testRun(200, true))

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreSnapshots(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	payload := []byte("compressed run bytes")
	if err := store.SaveSnapshot("evening", payload); err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	got, err := store.LoadSnapshot("evening")
	if err != nil {
		t.Fatalf("LoadSnapshot() failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Snapshot payload did not round-trip: %q", got)
	}

	// Same name replaces the payload
	if err := store.SaveSnapshot("evening", []byte("newer bytes")); err != nil {
		t.Fatalf("SaveSnapshot() overwrite failed: %v", err)
	}
	got, _ = store.LoadSnapshot("evening")
	if string(got) != "newer bytes" {
		t.Errorf("Expected replaced payload, got %q", got)
	}

	// Missing name is nil data, no error
	got, err = store.LoadSnapshot("missing")
	if err != nil {
		t.Fatalf("LoadSnapshot() for missing name failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil data for missing snapshot, got %q", got)
	}
}

func TestStoreListAndDeleteSnapshots(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveSnapshot("one", []byte("a"))
	store.SaveSnapshot("two", []byte("bb"))

	infos, err := store.ListSnapshots()
	if err != nil {
		t.Fatalf("ListSnapshots() failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(infos))
	}
	sizes := map[string]int{}
	for _, info := range infos {
		sizes[info.Name] = info.Size
	}
	if sizes["one"] != 1 || sizes["two"] != 2 {
		t.Errorf("Snapshot sizes wrong: %v", sizes)
	}

	if err := store.DeleteSnapshot("one"); err != nil {
		t.Fatalf("DeleteSnapshot() failed: %v", err)
	}
	infos, _ = store.ListSnapshots()
	if len(infos) != 1 || infos[0].Name != "two" {
		t.Errorf("Expected only 'two' left, got %v", infos)
	}

	// Deleting a missing snapshot is fine
	if err := store.DeleteSnapshot("ghost"); err != nil {
		t.Errorf("DeleteSnapshot() for missing name failed: %v", err)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
