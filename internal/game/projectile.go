package game

// Projectile is a player-fired shot. Velocity is fixed at creation from
// the aim direction; the radius matters only for enemy contact checks.
type Projectile struct {
	Pos    Vec
	Vel    Vec
	Radius float64

	// consumed marks a projectile that hit an enemy this frame. It is
	// skipped by later collision scans and compacted away at end of frame.
	consumed bool
}

// NewProjectile creates a shot at origin heading toward aim at the
// configured bullet speed. Aiming at the origin itself yields a zero
// direction; the projectile then sits still rather than erroring.
func NewProjectile(origin, aim Vec, cfg Config) Projectile {
	p := Projectile{Pos: origin, Radius: cfg.BulletRadius}
	if dir, ok := aim.Sub(origin).Normalized(); ok {
		p.Vel = dir.Mul(cfg.BulletSpeed)
	}
	return p
}

// Move advances the projectile by its velocity.
func (p *Projectile) Move() { p.Pos = p.Pos.Add(p.Vel) }

// OutOfBounds reports whether the projectile has left the window. The
// comparisons are strict: a position exactly on an edge is still in play.
func (p *Projectile) OutOfBounds(w, h float64) bool {
	return p.Pos.X < 0 || p.Pos.X > w || p.Pos.Y < 0 || p.Pos.Y > h
}
