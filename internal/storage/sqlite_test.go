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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(score); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", score, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore((i + 1) * 100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore(100)
	store.SaveScore(300)
	store.SaveScore(200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100)
	store.SaveScore(200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreEpisodes(t *testing.T) {
	store := openTestStore(t)

	episodes := []EpisodeEntry{
		{Policy: "gap", Ticks: 400, Score: 5, Reward: -495},
		{Policy: "gap", Ticks: 700, Score: 9, Reward: -491},
		{Policy: "random", Ticks: 40, Score: 0, Reward: -500},
	}
	for _, e := range episodes {
		if _, err := store.SaveEpisode(e); err != nil {
			t.Fatalf("SaveEpisode(%+v) failed: %v", e, err)
		}
	}

	recent, err := store.RecentEpisodes(2)
	if err != nil {
		t.Fatalf("RecentEpisodes() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 episodes, got %d", len(recent))
	}

	// Newest first
	if recent[0].Policy != "random" || recent[0].Score != 0 {
		t.Errorf("recent[0] = %+v, want the random episode", recent[0])
	}
	if recent[1].Policy != "gap" || recent[1].Ticks != 700 {
		t.Errorf("recent[1] = %+v, want the second gap episode", recent[1])
	}
}

func TestStoreEpisodeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveEpisode(EpisodeEntry{Policy: "gap", Ticks: 100, Score: 2, Reward: -498})
	store.SaveEpisode(EpisodeEntry{Policy: "gap", Ticks: 300, Score: 4, Reward: -496})
	store.SaveEpisode(EpisodeEntry{Policy: "random", Ticks: 50, Score: 0, Reward: -500})

	stats, err := store.EpisodeStats()
	if err != nil {
		t.Fatalf("EpisodeStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 policies, got %d", len(stats))
	}

	gap := stats[0]
	if gap.Policy != "gap" {
		t.Fatalf("stats[0].Policy = %q, want gap", gap.Policy)
	}
	if gap.Episodes != 2 || gap.BestScore != 4 {
		t.Errorf("gap stats = %+v, want 2 episodes with best 4", gap)
	}
	if gap.AvgScore != 3 {
		t.Errorf("gap avg score = %v, want 3", gap.AvgScore)
	}
}
