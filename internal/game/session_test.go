package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteScore_TwoLineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_score.txt")
	if err := WriteScore(path, 120, 12); err != nil {
		t.Fatalf("WriteScore: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(data), "Final Score: 120\nKills: 12"; got != want {
		t.Fatalf("score file = %q, want %q", got, want)
	}
}

func TestWriteScore_OverwritesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_score.txt")
	if err := WriteScore(path, 10, 1); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteScore(path, 30, 3); err != nil {
		t.Fatalf("second write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if got, want := string(data), "Final Score: 30\nKills: 3"; got != want {
		t.Fatalf("score file = %q, want %q", got, want)
	}
}

func TestSession_PersistsExactlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_score.txt")
	s := Session{ScorePath: path}

	did, err := s.PersistOnce(50, 5)
	if err != nil || !did {
		t.Fatalf("first persist: did=%v err=%v", did, err)
	}
	// A second observation of the terminal condition must not rewrite.
	did, err = s.PersistOnce(999, 99)
	if err != nil || did {
		t.Fatalf("second persist: did=%v err=%v, want no-op", did, err)
	}

	data, _ := os.ReadFile(path)
	if got, want := string(data), "Final Score: 50\nKills: 5"; got != want {
		t.Fatalf("score file = %q, want %q", got, want)
	}
}

// 100 hp, outside the zone with no other damage source: dead after
// 100 frames and the then-current score lands in the file.
func TestSessionEnd_OutsideZonePersistsFinalScore(t *testing.T) {
	tw := NewTestWorld(
		WithNoInitialEnemies(),
		WithPlayerAt(0, 0),
	)
	end := tw.RunUntil(func(w *World) bool { return w.GameOver() }, 200)
	if end != 100 {
		t.Fatalf("death frame = %d, want 100", end)
	}

	path := filepath.Join(t.TempDir(), "game_score.txt")
	s := Session{ScorePath: path}
	if _, err := s.PersistOnce(tw.Score, tw.Kills); err != nil {
		t.Fatalf("persist: %v", err)
	}
	data, _ := os.ReadFile(path)
	if got, want := string(data), "Final Score: 0\nKills: 0"; got != want {
		t.Fatalf("score file = %q, want %q", got, want)
	}
}
