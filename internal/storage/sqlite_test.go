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

func mustSave(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(gameID, score); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "flappy", 42)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected 42 after reopen, got %d", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{100, 50, 200, 100} {
		mustSave(t, store, "flappy", s)
	}
	mustSave(t, store, "other", 500)

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"all", 10, []int{200, 100, 100, 50}},
		{"limited", 2, []int{200, 100}},
		{"default limit", 0, []int{200, 100, 100, 50}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := store.TopScores("flappy", tc.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != len(tc.want) {
				t.Fatalf("Expected %d scores, got %d", len(tc.want), len(scores))
			}
			for i, want := range tc.want {
				if scores[i].Score != want {
					t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
				}
				if scores[i].GameID != "flappy" {
					t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
				}
			}
		})
	}
}

func TestStoreTopScoresTiesKeepInsertOrder(t *testing.T) {
	store := openTestStore(t)
	first, _ := store.SaveScore("flappy", 10)
	second, _ := store.SaveScore("flappy", 10)

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("tie order = [%d %d], expected [%d %d]", scores[0].ID, scores[1].ID, first, second)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "flappy", 100)
	mustSave(t, store, "flappy", 300)
	mustSave(t, store, "flappy", 200)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "flappy", 100)
	mustSave(t, store, "other", 300)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappy, _ := store.AllScores("flappy")
	if len(flappy) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappy))
	}
	other, _ := store.AllScores("other")
	if len(other) != 1 {
		t.Error("Other games should not be affected")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		mustSave(t, store, "flappy", i*2)
	}

	scores, err := store.AllScores("flappy")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 38 {
		t.Errorf("Expected highest first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	mustSave(t, store, "flappy", 2)
	mustSave(t, store, "flappy", 6)

	stats, err = store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 6 || stats.TotalScore != 8 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, expected 4", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"sqlite text", "2024-03-01 12:30:00", want},
		{"rfc3339 text", "2024-03-01T12:30:00Z", want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTimestamp(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTimestamp(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
