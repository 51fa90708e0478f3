package game

import (
	"fmt"
	"os"
)

// WriteScore persists the final score and kill count as two lines of plain
// text, overwriting any previous file.
func WriteScore(path string, score, kills int) error {
	body := fmt.Sprintf("Final Score: %d\nKills: %d", score, kills)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write score file %s: %w", path, err)
	}
	return nil
}

// Session tracks the one-shot end-of-game hand-off. The terminal condition
// may be observed by whichever adapter drives the world; PersistOnce
// guarantees the score file is written exactly once per session.
type Session struct {
	ScorePath string
	persisted bool
}

// PersistOnce writes the score file on the first call and reports whether
// this call did the write. Later calls are no-ops.
func (s *Session) PersistOnce(score, kills int) (bool, error) {
	if s.persisted {
		return false, nil
	}
	s.persisted = true
	if err := WriteScore(s.ScorePath, score, kills); err != nil {
		return true, err
	}
	return true, nil
}
