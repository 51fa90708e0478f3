package game

import "math/rand"

// Entity is the state shared by the player and enemies: a position, the
// velocity applied to it each frame, a base movement speed and a health
// pool. Health only ever goes down after creation.
type Entity struct {
	Pos    Vec
	Vel    Vec
	Speed  float64
	Health int
}

// Alive reports whether the entity still has health left.
func (e *Entity) Alive() bool { return e.Health > 0 }

// TakeDamage reduces health by amount.
func (e *Entity) TakeDamage(amount int) { e.Health -= amount }

// Move advances the entity by its current velocity.
func (e *Entity) Move() { e.Pos = e.Pos.Add(e.Vel) }

// Input is the per-frame input snapshot consumed by the simulation step.
// The presentation adapter fills it from the real keyboard and mouse; the
// headless harness scripts it.
type Input struct {
	Up, Down, Left, Right bool

	// Fire is the edge-triggered shoot event for this frame; Aim is the
	// cursor position the shot is directed at.
	Fire bool
	Aim  Vec
}

// Player is the avatar. Its velocity is rebuilt every frame from held keys.
type Player struct {
	Entity
}

// NewPlayer creates the player at the window centre with full health.
func NewPlayer(cfg Config) *Player {
	return &Player{Entity: Entity{
		Pos:    cfg.Center(),
		Speed:  cfg.PlayerSpeed,
		Health: cfg.PlayerHealth,
	}}
}

// UpdateVelocity sums a unit contribution per held movement key, scaled by
// the player speed. Held axes combine without normalisation, so diagonal
// movement is faster by a factor of sqrt(2). That matches the original
// game feel and is left as-is.
func (p *Player) UpdateVelocity(in Input) {
	v := Vec{}
	if in.Up {
		v.Y -= p.Speed
	}
	if in.Down {
		v.Y += p.Speed
	}
	if in.Left {
		v.X -= p.Speed
	}
	if in.Right {
		v.X += p.Speed
	}
	p.Vel = v
}

// Enemy pursues the player. Each enemy gets a random speed bonus at spawn
// so packs spread out instead of arriving as one clump.
type Enemy struct {
	Entity
}

// NewEnemy creates an enemy at pos with a randomised speed.
func NewEnemy(pos Vec, cfg Config, rng *rand.Rand) *Enemy {
	jitterSteps := int(cfg.EnemySpeedJitter*10) + 1
	speed := cfg.EnemySpeed + float64(rng.Intn(jitterSteps))/10.0
	return &Enemy{Entity: Entity{
		Pos:    pos,
		Speed:  speed,
		Health: cfg.EnemyHealth,
	}}
}

// Seek points the enemy's velocity at the target. When the enemy sits
// exactly on the target the direction has zero length and the velocity is
// left unchanged — no division by zero, no error.
func (e *Enemy) Seek(target Vec) {
	dir, ok := target.Sub(e.Pos).Normalized()
	if !ok {
		return
	}
	e.Vel = dir.Mul(e.Speed)
}
