package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"helldiver/internal/game"
)

// runStats captures one headless session for the aggregate report.
type runStats struct {
	runIndex int
	seed     int64

	endFrame      int // frame the player died on, or -1 if still alive
	zoneHeldFrame int // frame the zone reached its floor, or -1
	spawns        int

	summary game.Summary
}

// buildScript returns the per-frame input source for a named scenario.
func buildScript(name string) (func(w *game.World, frame int) game.Input, error) {
	switch name {
	case "idle":
		// No input at all: the player stands at the centre until the
		// enemies and the zone finish the job.
		return func(*game.World, int) game.Input { return game.Input{} }, nil

	case "turret":
		// Stand still and fire at the nearest enemy whenever the cooldown
		// allows.
		return func(w *game.World, _ int) game.Input {
			var in game.Input
			bestD := math.MaxFloat64
			for _, e := range w.Enemies {
				if d := game.Dist(e.Pos, w.Player.Pos); d < bestD {
					bestD = d
					in.Fire = true
					in.Aim = e.Pos
				}
			}
			return in
		}, nil

	default:
		return nil, fmt.Errorf("unknown scenario %q (want idle or turret)", name)
	}
}

func formatRun(rs runStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %d (seed %d): ", rs.runIndex, rs.seed)
	if rs.endFrame >= 0 {
		fmt.Fprintf(&b, "died F=%d", rs.endFrame)
	} else {
		fmt.Fprintf(&b, "survived F=%d", rs.summary.Frames)
	}
	fmt.Fprintf(&b, "  score=%d kills=%d shots=%d acc=%.0f%% spawns=%d",
		rs.summary.Score, rs.summary.Kills, rs.summary.Shots,
		rs.summary.Accuracy()*100, rs.spawns)
	if rs.zoneHeldFrame >= 0 {
		fmt.Fprintf(&b, " zone_held=F%d", rs.zoneHeldFrame)
	}
	return b.String()
}

func formatAggregate(all []runStats) string {
	if len(all) == 0 {
		return "no runs"
	}
	var frames, score, kills, died int
	for _, rs := range all {
		frames += rs.summary.Frames
		score += rs.summary.Score
		kills += rs.summary.Kills
		if rs.endFrame >= 0 {
			died++
		}
	}
	n := float64(len(all))
	return fmt.Sprintf("aggregate over %d runs: mean_frames=%.0f mean_score=%.1f mean_kills=%.1f deaths=%d/%d",
		len(all), float64(frames)/n, float64(score)/n, float64(kills)/n, died, len(all))
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var scenario string
	var verbose bool
	var scoreFile string

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&frames, "frames", 18000, "max frames per session (18000 = 5 min at 60Hz)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "turret", "input script: idle or turret")
	flag.BoolVar(&verbose, "verbose", false, "dump the full run log for each session")
	flag.StringVar(&scoreFile, "score-file", "", "persist each session's final score to this file")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(1)
	}
	script, err := buildScript(scenario)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	var all []runStats
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		tw := game.NewTestWorld(
			game.WithSeed(seed),
			game.WithVerbose(verbose),
			game.WithScript(script),
		)
		end := tw.RunUntil(func(w *game.World) bool { return w.GameOver() }, frames)

		rs := runStats{
			runIndex:      i + 1,
			seed:          seed,
			endFrame:      end,
			zoneHeldFrame: -1,
			spawns:        tw.Log.Count("spawn", "enemy"),
			summary:       tw.Summary(),
		}
		if held := tw.Log.Filter("zone", "held"); len(held) > 0 {
			rs.zoneHeldFrame = held[0].Frame
		}
		all = append(all, rs)

		fmt.Println(formatRun(rs))
		if verbose {
			for _, e := range tw.Log.Entries() {
				fmt.Println("  " + e.String())
			}
		}

		if scoreFile != "" {
			sess := game.Session{ScorePath: scoreFile}
			if _, err := sess.PersistOnce(rs.summary.Score, rs.summary.Kills); err != nil {
				fmt.Printf("warning: %v\n", err)
			}
		}
	}

	fmt.Println(formatAggregate(all))
}
