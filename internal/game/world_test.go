package game

import "testing"

// fireEveryFrame scripts a fire event on every frame, aimed at a fixed
// point left of the player; the cooldown should discard most of them.
func fireEveryFrame(w *World, _ int) Input {
	return Input{Fire: true, Aim: Vec{X: 0, Y: w.Player.Pos.Y}}
}

func TestFireCooldown_SecondShotWaitsForInterval(t *testing.T) {
	tw := NewTestWorld(
		WithNoInitialEnemies(),
		WithScript(fireEveryFrame),
	)

	// First frame fires immediately (the pre-game screen already outlasted
	// the cooldown). With a 0.3s cooldown at 60Hz the next shot needs 19
	// more frames of accumulated time.
	tw.RunFrames(19)
	if tw.Shots != 1 {
		t.Fatalf("shots after 19 frames = %d, want 1 (cooldown not respected)", tw.Shots)
	}
	tw.RunFrames(1)
	if tw.Shots != 2 {
		t.Fatalf("shots after 20 frames = %d, want 2", tw.Shots)
	}
}

func TestProjectile_CulledWithinOneFrameOfCrossing(t *testing.T) {
	tw := NewTestWorld(
		WithNoInitialEnemies(),
		// Heading left at 7 px/frame from x=3: next step puts it at -4.
		WithProjectileAt(3, 350, -7, 0),
	)
	tw.RunFrames(1)
	if len(tw.Projectiles) != 0 {
		t.Fatalf("projectile should be removed the frame it crosses out, have %d", len(tw.Projectiles))
	}
}

func TestProjectile_BoundaryExactPositionStays(t *testing.T) {
	tw := NewTestWorld(
		WithNoInitialEnemies(),
		// Lands exactly on x=0, which the strict comparison keeps in play.
		WithProjectileAt(7, 350, -7, 0),
	)
	tw.RunFrames(1)
	if len(tw.Projectiles) != 1 {
		t.Fatalf("boundary-exact projectile should survive, have %d", len(tw.Projectiles))
	}
}

func TestCollision_EnemyAbsorbsOneHitPerFrame(t *testing.T) {
	tw := NewTestWorld(
		WithNoInitialEnemies(),
		// Stationary enemy away from the player, with two stationary
		// projectiles parked on top of it.
		WithEnemy(300, 300, 50, 0),
		WithProjectileAt(300, 300, 0, 0),
		WithProjectileAt(300, 300, 0, 0),
	)

	tw.RunFrames(1)
	if got := tw.Enemies[0].Health; got != 25 {
		t.Fatalf("enemy health after frame 1 = %d, want 25 (exactly one hit)", got)
	}
	if len(tw.Projectiles) != 1 {
		t.Fatalf("projectiles left = %d, want 1 (only the first match consumed)", len(tw.Projectiles))
	}
	if tw.Hits != 1 {
		t.Fatalf("hits = %d, want 1", tw.Hits)
	}

	// The deferred projectile lands next frame and finishes the enemy.
	tw.RunFrames(1)
	if len(tw.Enemies) != 0 {
		t.Fatal("enemy should be removed once health reaches 0")
	}
	if tw.Score != 10 || tw.Kills != 1 {
		t.Fatalf("score=%d kills=%d, want 10/1", tw.Score, tw.Kills)
	}
	if tw.Log.Count("kill", "enemy") != 1 {
		t.Fatalf("expected exactly one kill event, got %d", tw.Log.Count("kill", "enemy"))
	}
}

func TestContactDamage_AppliesEveryFrameWithoutCooldown(t *testing.T) {
	tw := NewTestWorld(
		WithNoInitialEnemies(),
		// Enemy pinned on the player: zero-length seek keeps it in place.
		WithEnemy(600, 350, 50, 1),
	)
	tw.RunFrames(10)
	if got := tw.Player.Health; got != 90 {
		t.Fatalf("player health after 10 contact frames = %d, want 90", got)
	}
	if !tw.Enemies[0].Alive() {
		t.Fatal("contact damage must not hurt the enemy")
	}
}

func TestZoneDamage_StacksWithContactDamage(t *testing.T) {
	cfg := DefaultConfig()
	tw := NewTestWorld(
		WithConfig(cfg),
		WithNoInitialEnemies(),
		// Player outside the zone with an enemy pinned on top: 2 hp per frame.
		WithPlayerAt(0, 0),
		WithEnemy(0, 0, 50, 0),
	)
	tw.RunFrames(5)
	if got := tw.Player.Health; got != cfg.PlayerHealth-10 {
		t.Fatalf("player health = %d, want %d (contact and zone damage stack)",
			got, cfg.PlayerHealth-10)
	}
}

func TestSpawn_RespectsIntervalAndCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialEnemies = 0
	cfg.MaxEnemies = 2
	cfg.SpawnInterval = 0.1
	cfg.EnemySpeed = 0
	cfg.EnemySpeedJitter = 0
	tw := NewTestWorld(WithConfig(cfg), WithSeed(11))

	// 0.1s at 60Hz is 6 frames; the strict comparison fires on the 7th.
	tw.RunFrames(6)
	if got := tw.Log.Count("spawn", "enemy"); got != 0 {
		t.Fatalf("spawns after 6 frames = %d, want 0", got)
	}
	tw.RunFrames(1)
	if got := tw.Log.Count("spawn", "enemy"); got != 1 {
		t.Fatalf("spawns after 7 frames = %d, want 1", got)
	}

	// The cap blocks further spawns; the timer keeps accumulating.
	tw.RunFrames(300)
	if got := tw.Log.Count("spawn", "enemy"); got != cfg.MaxEnemies {
		t.Fatalf("spawns = %d, want cap %d", got, cfg.MaxEnemies)
	}
	if len(tw.Enemies) != cfg.MaxEnemies {
		t.Fatalf("enemy count = %d, want %d", len(tw.Enemies), cfg.MaxEnemies)
	}
}

func TestHealthMonotonic_IdleSession(t *testing.T) {
	tw := NewTestWorld(WithSeed(42), WithVerbose(true))
	tw.RunFrames(600)

	prev := tw.Config().PlayerHealth
	for _, e := range tw.Log.Filter("player", "health") {
		hp := int(e.NumVal)
		if hp > prev {
			t.Fatalf("player health increased %d → %d at F=%d", prev, hp, e.Frame)
		}
		prev = hp
	}
}

func TestWorld_NoSteppingAfterGameOver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlayerHealth = 1
	tw := NewTestWorld(
		WithConfig(cfg),
		WithNoInitialEnemies(),
		WithPlayerAt(0, 0), // outside the zone: dead on frame 1
	)

	tw.RunFrames(1)
	if !tw.GameOver() {
		t.Fatal("expected game over on frame 1")
	}
	frame := tw.Frame

	tw.RunFrames(10)
	if tw.Frame != frame {
		t.Fatalf("world stepped after terminal condition: frame %d → %d", frame, tw.Frame)
	}
}

func TestRunUntil_ReportsTerminalFrame(t *testing.T) {
	tw := NewTestWorld(
		WithNoInitialEnemies(),
		WithPlayerAt(0, 0), // 1 zone damage per frame, 100 hp
	)
	end := tw.RunUntil(func(w *World) bool { return w.GameOver() }, 500)
	if end != 100 {
		t.Fatalf("terminal frame = %d, want exactly 100", end)
	}
	if tw.Player.Health != 0 {
		t.Fatalf("player health at death = %d, want 0", tw.Player.Health)
	}
}
