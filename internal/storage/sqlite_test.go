package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	inputs := []Result{
		{SessionID: "a", ElapsedSecs: 120, Moves: 30, Theme: "mahjong"},
		{SessionID: "b", ElapsedSecs: 95, Moves: 25, Theme: "mahjong", NewRecord: true},
		{SessionID: "c", ElapsedSecs: 200, Moves: 41, Theme: "ascii"},
	}
	for _, r := range inputs {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	fastest, err := store.FastestResults(10)
	if err != nil {
		t.Fatalf("FastestResults() failed: %v", err)
	}
	if len(fastest) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(fastest))
	}

	// Should be sorted ascending by time
	if fastest[0].ElapsedSecs != 95 || fastest[1].ElapsedSecs != 120 || fastest[2].ElapsedSecs != 200 {
		t.Errorf("Results not in expected order: %+v", fastest)
	}
	if !fastest[0].NewRecord || fastest[0].SessionID != "b" || fastest[0].Moves != 25 {
		t.Errorf("Fields not round-tripped: %+v", fastest[0])
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != "c" || recent[1].SessionID != "b" {
		t.Errorf("RecentResults() = %+v, expected c then b", recent)
	}
}

func TestStoreFastestLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{SessionID: "s", ElapsedSecs: (i + 1) * 10})
	}

	results, err := store.FastestResults(3)
	if err != nil {
		t.Fatalf("FastestResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].ElapsedSecs != 10 || results[2].ElapsedSecs != 30 {
		t.Errorf("Results not in expected order: %+v", results)
	}
}

func TestStoreFastestTime(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.FastestTime()
	if err != nil {
		t.Fatalf("FastestTime() failed: %v", err)
	}
	if ok {
		t.Error("FastestTime() should report no games on an empty history")
	}

	store.SaveResult(Result{SessionID: "x", ElapsedSecs: 77})
	store.SaveResult(Result{SessionID: "y", ElapsedSecs: 64})

	secs, ok, err := store.FastestTime()
	if err != nil || !ok || secs != 64 {
		t.Errorf("FastestTime() = %d, %v, %v; expected 64, true, nil", secs, ok, err)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveResult(Result{SessionID: "a", ElapsedSecs: 100, Moves: 20, NewRecord: true})
	store.SaveResult(Result{SessionID: "b", ElapsedSecs: 50, Moves: 30, NewRecord: true})
	store.SaveResult(Result{SessionID: "c", ElapsedSecs: 90, Moves: 40})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.FastestSecs != 50 {
		t.Errorf("FastestSecs = %d, expected 50", stats.FastestSecs)
	}
	if stats.AvgSecs != 80 {
		t.Errorf("AvgSecs = %f, expected 80", stats.AvgSecs)
	}
	if stats.AvgMoves != 30 {
		t.Errorf("AvgMoves = %f, expected 30", stats.AvgMoves)
	}
	if stats.Records != 2 {
		t.Errorf("Records = %d, expected 2", stats.Records)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{SessionID: "a", ElapsedSecs: 100})
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, err := store.FastestResults(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("Expected empty history after clear, got %d", len(results))
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveResult(Result{SessionID: "p", ElapsedSecs: 33})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	secs, ok, err := store2.FastestTime()
	if err != nil || !ok || secs != 33 {
		t.Errorf("FastestTime() after reopen = %d, %v, %v", secs, ok, err)
	}
}
