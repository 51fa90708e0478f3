package main

import (
	"strings"
	"testing"

	"helldiver/internal/game"
)

func TestBuildScript_RejectsUnknownScenario(t *testing.T) {
	if _, err := buildScript("bogus"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}

func TestBuildScript_TurretAimsAtNearestEnemy(t *testing.T) {
	script, err := buildScript("turret")
	if err != nil {
		t.Fatalf("buildScript: %v", err)
	}

	tw := game.NewTestWorld(
		game.WithNoInitialEnemies(),
		game.WithEnemyAt(100, 100),
		game.WithEnemyAt(650, 350), // closest to the centre player
	)
	in := script(tw.World, 1)
	if !in.Fire {
		t.Fatal("turret script should fire when an enemy exists")
	}
	if in.Aim.X != 650 || in.Aim.Y != 350 {
		t.Fatalf("expected aim at nearest enemy (650,350), got (%.0f,%.0f)", in.Aim.X, in.Aim.Y)
	}
}

func TestBuildScript_TurretHoldsFireWithNoEnemies(t *testing.T) {
	script, _ := buildScript("turret")
	tw := game.NewTestWorld(game.WithNoInitialEnemies())
	if in := script(tw.World, 1); in.Fire {
		t.Fatal("turret script should not fire with no enemies")
	}
}

func TestFormatAggregate_MeansAndDeaths(t *testing.T) {
	all := []runStats{
		{endFrame: 500, summary: game.Summary{Frames: 500, Score: 30, Kills: 3}},
		{endFrame: -1, summary: game.Summary{Frames: 1000, Score: 50, Kills: 5}},
	}
	got := formatAggregate(all)
	for _, want := range []string{"2 runs", "mean_frames=750", "mean_score=40.0", "mean_kills=4.0", "deaths=1/2"} {
		if !strings.Contains(got, want) {
			t.Errorf("aggregate %q missing %q", got, want)
		}
	}
}

func TestFormatRun_DistinguishesDeathFromSurvival(t *testing.T) {
	died := formatRun(runStats{runIndex: 1, seed: 7, endFrame: 123, zoneHeldFrame: -1,
		summary: game.Summary{Frames: 123, Score: 10, Kills: 1, Shots: 4, Hits: 2}})
	if !strings.Contains(died, "died F=123") {
		t.Errorf("expected death marker, got %q", died)
	}
	alive := formatRun(runStats{runIndex: 2, seed: 8, endFrame: -1, zoneHeldFrame: -1,
		summary: game.Summary{Frames: 600}})
	if !strings.Contains(alive, "survived F=600") {
		t.Errorf("expected survival marker, got %q", alive)
	}
}
