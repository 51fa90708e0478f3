package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Summary is a lightweight end-of-run snapshot used by the headless runner
// and the end-of-session report.
type Summary struct {
	Frames     int
	Score      int
	Kills      int
	Shots      int
	Hits       int
	Health     int
	ZoneRadius float64
	ZoneState  ZoneState
	Enemies    int
}

// Summary captures the world's current run statistics.
func (w *World) Summary() Summary {
	return Summary{
		Frames:     w.Frame,
		Score:      w.Score,
		Kills:      w.Kills,
		Shots:      w.Shots,
		Hits:       w.Hits,
		Health:     w.Player.Health,
		ZoneRadius: w.Zone.Radius,
		ZoneState:  w.Zone.State(),
		Enemies:    len(w.Enemies),
	}
}

// Accuracy returns hits/shots in [0,1], or 0 when nothing was fired.
func (s Summary) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

// Format renders the summary as a plain-text report block.
func (s Summary) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Helldiver session report ---\n")
	fmt.Fprintf(&b, "frames=%d score=%d kills=%d\n", s.Frames, s.Score, s.Kills)
	fmt.Fprintf(&b, "shots=%d hits=%d accuracy=%.0f%%\n", s.Shots, s.Hits, s.Accuracy()*100)
	fmt.Fprintf(&b, "health=%d enemies_left=%d zone=%.1fpx (%s)\n",
		s.Health, s.Enemies, s.ZoneRadius, s.ZoneState)
	return b.String()
}

// CopyReport places the formatted report on the system clipboard so a run
// can be pasted straight into a bug ticket or chat.
func CopyReport(s Summary) error {
	if err := clipboard.WriteAll(s.Format()); err != nil {
		return fmt.Errorf("copy session report: %w", err)
	}
	return nil
}
