package game

import (
	"fmt"
	"math/rand"
)

// StepResult reports the frame's boundary-crossing events: the presentation
// adapter uses Fired for the shoot sound and GameOver for the end screen.
type StepResult struct {
	Fired    bool
	Kills    int
	GameOver bool
}

// World is the whole simulation state. It is single-threaded: Step is the
// only mutator, called once per frame. Everything the presentation adapter
// needs is exposed as read-only-by-convention fields.
type World struct {
	cfg Config

	Player      *Player
	Enemies     []*Enemy
	Projectiles []Projectile
	Zone        *SafeZone

	Score int
	Kills int
	Frame int

	// Shots and Hits feed the end-of-session report.
	Shots int
	Hits  int

	sinceLastShot  float64 // seconds since the last successful fire
	sinceLastSpawn float64 // seconds since the last enemy spawn

	rng  *rand.Rand
	log  *RunLog
	over bool
}

// NewWorld builds a fresh session: player at the window centre, the zone
// at full radius and the initial enemy wave scattered across the window.
func NewWorld(cfg Config, seed int64) *World {
	w := &World{
		cfg:    cfg,
		Player: NewPlayer(cfg),
		Zone:   NewSafeZone(cfg),
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- game only
		// The pre-game screen always outlasts the cooldown, so the first
		// click fires immediately.
		sinceLastShot: cfg.FireCooldown,
	}
	for i := 0; i < cfg.InitialEnemies; i++ {
		w.Enemies = append(w.Enemies, NewEnemy(w.randomPos(), cfg, w.rng))
	}
	return w
}

// AttachLog wires a RunLog into the world. Without one, Step runs silent.
func (w *World) AttachLog(rl *RunLog) { w.log = rl }

// Config returns the immutable tuning this world was built with.
func (w *World) Config() Config { return w.cfg }

// GameOver reports whether the terminal condition has been observed.
func (w *World) GameOver() bool { return w.over }

func (w *World) randomPos() Vec {
	return Vec{
		X: float64(w.rng.Intn(w.cfg.WindowW)),
		Y: float64(w.rng.Intn(w.cfg.WindowH)),
	}
}

// Step advances the simulation by one frame. dt is the wall-clock seconds
// since the previous frame and drives only the fire and spawn timers;
// movement is per-frame as in the original tuning. After the terminal
// condition has been observed Step is a no-op.
func (w *World) Step(in Input, dt float64) StepResult {
	var res StepResult
	if w.over {
		return res
	}
	w.Frame++
	w.sinceLastShot += dt
	w.sinceLastSpawn += dt

	// Fire action: edge event gated by the cooldown timer.
	if in.Fire && w.sinceLastShot > w.cfg.FireCooldown {
		w.Projectiles = append(w.Projectiles, NewProjectile(w.Player.Pos, in.Aim, w.cfg))
		w.sinceLastShot = 0
		w.Shots++
		res.Fired = true
		w.log.Add(w.Frame, "fire", "shot",
			fmt.Sprintf("toward (%.0f,%.0f)", in.Aim.X, in.Aim.Y), 0)
	}

	// Player movement.
	w.Player.UpdateVelocity(in)
	w.Player.Move()

	// Projectiles: advance, then drop any that left the window.
	wd, ht := float64(w.cfg.WindowW), float64(w.cfg.WindowH)
	keptP := w.Projectiles[:0]
	for i := range w.Projectiles {
		p := w.Projectiles[i]
		p.Move()
		if p.OutOfBounds(wd, ht) {
			continue
		}
		keptP = append(keptP, p)
	}
	w.Projectiles = keptP

	w.updateEnemies(&res)

	// Safe zone: shrink, then punish the player for standing outside.
	prev := w.Zone.State()
	w.Zone.Update()
	if prev == ZoneShrinking && w.Zone.State() == ZoneHeld {
		w.log.Add(w.Frame, "zone", "held",
			fmt.Sprintf("radius held at %.1f", w.Zone.Radius), w.Zone.Radius)
	}
	if !w.Zone.Contains(w.Player.Pos) {
		w.Player.TakeDamage(1)
		w.log.AddVerbose(w.Frame, "damage", "zone", "outside safe zone", 1)
	}

	// Spawning: the timer keeps accumulating while the cap is reached and
	// fires on the first frame the population drops below it.
	if w.sinceLastSpawn > w.cfg.SpawnInterval && len(w.Enemies) < w.cfg.MaxEnemies {
		e := NewEnemy(w.randomPos(), w.cfg, w.rng)
		w.Enemies = append(w.Enemies, e)
		w.sinceLastSpawn = 0
		w.log.Add(w.Frame, "spawn", "enemy",
			fmt.Sprintf("at (%.0f,%.0f) speed %.1f", e.Pos.X, e.Pos.Y, e.Speed), 0)
	}

	w.log.AddVerbose(w.Frame, "player", "position",
		fmt.Sprintf("(%.1f,%.1f)", w.Player.Pos.X, w.Player.Pos.Y), 0)
	w.log.AddVerbose(w.Frame, "player", "health",
		fmt.Sprintf("%d", w.Player.Health), float64(w.Player.Health))

	// Terminal check: collisions already resolved this frame stand, and no
	// further stepping happens afterwards.
	if !w.Player.Alive() {
		w.over = true
		res.GameOver = true
		w.log.Add(w.Frame, "session", "over",
			fmt.Sprintf("score %d kills %d", w.Score, w.Kills), 0)
	}
	return res
}

// updateEnemies runs the per-enemy frame work: pursue the player, resolve
// projectile hits, then contact damage. An enemy absorbs at most one
// projectile per frame — the first in scan order wins, the rest stay in
// flight for the next frame. Dead enemies are dropped by compaction rather
// than erased mid-scan.
func (w *World) updateEnemies(res *StepResult) {
	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		e.Seek(w.Player.Pos)
		e.Move()

		for i := range w.Projectiles {
			p := &w.Projectiles[i]
			if p.consumed {
				continue
			}
			if Dist(p.Pos, e.Pos) < p.Radius+w.cfg.EnemyHitRadius {
				before := e.Health
				e.TakeDamage(w.cfg.BulletDamage)
				p.consumed = true
				w.Hits++
				w.log.Add(w.Frame, "hit", "enemy",
					fmt.Sprintf("hp %d → %d", before, e.Health), float64(e.Health))
				if !e.Alive() {
					w.Score += w.cfg.KillScore
					w.Kills++
					res.Kills++
					w.log.Add(w.Frame, "kill", "enemy",
						fmt.Sprintf("score %d kills %d", w.Score, w.Kills), 0)
				}
				break
			}
		}
		if !e.Alive() {
			continue
		}

		// Contact damage has no cooldown: adjacency costs 1 hp per frame.
		if Dist(w.Player.Pos, e.Pos) < w.cfg.PlayerContactRadius {
			w.Player.TakeDamage(1)
			w.log.AddVerbose(w.Frame, "damage", "contact", "enemy contact", 1)
		}
		live = append(live, e)
	}
	w.Enemies = live

	keptP := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.consumed {
			keptP = append(keptP, p)
		}
	}
	w.Projectiles = keptP
}
