package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreSaveAndTopRounds(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Round{
		{Result: "loss", Score: 100, Lives: -1},
		{Result: "loss", Score: 50, Lives: -1},
		{Result: "win", Score: 480, Lives: 2, Duration: 95 * time.Second},
		{Result: "loss", Score: 100, Lives: -1},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 4 {
		t.Fatalf("Expected 4 rounds, got %d", len(rounds))
	}

	want := []int{480, 100, 100, 50}
	for i, r := range rounds {
		if r.Score != want[i] {
			t.Errorf("rounds[%d].Score = %d, expected %d", i, r.Score, want[i])
		}
	}
	if rounds[0].Result != "win" || rounds[0].Duration != 95*time.Second || rounds[0].Lives != 2 {
		t.Errorf("best round = %+v", rounds[0])
	}
	// Equal scores keep insertion order.
	if rounds[1].ID > rounds[2].ID {
		t.Errorf("tie not ordered by id: %d then %d", rounds[1].ID, rounds[2].ID)
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRound(Round{Result: "loss", Score: (i + 1) * 100})
	}

	rounds, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Score != 500 || rounds[1].Score != 400 || rounds[2].Score != 300 {
		t.Errorf("Rounds not in expected order: %v", rounds)
	}
}

func TestStoreRecentRounds(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		store.SaveRound(Round{Result: "loss", Score: score})
	}

	rounds, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 || rounds[0].Score != 30 || rounds[1].Score != 20 {
		t.Errorf("RecentRounds(2) = %v, expected 30 then 20", rounds)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	store.SaveRound(Round{Result: "loss", Score: 150})
	store.SaveRound(Round{Result: "win", Score: 300})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score 300, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRound(Round{Result: "win", Score: 480})
	store.SaveRound(Round{Result: "loss", Score: 120})
	store.SaveRound(Round{Result: "loss", Score: 0})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 || stats.Wins != 1 || stats.BestScore != 480 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(Round{Result: "loss", Score: 10})
	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected empty history, got %d rounds", len(rounds))
	}
}
