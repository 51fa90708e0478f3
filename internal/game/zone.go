package game

// ZoneState is the safe zone's life stage.
type ZoneState int

const (
	ZoneShrinking ZoneState = iota // radius still closing in
	ZoneHeld                       // floor reached, radius fixed
)

func (zs ZoneState) String() string {
	switch zs {
	case ZoneShrinking:
		return "shrinking"
	case ZoneHeld:
		return "held"
	default:
		return "unknown"
	}
}

// SafeZone is the shrinking circular boundary. Standing outside it costs
// the player 1 health per frame.
type SafeZone struct {
	Center Vec
	Radius float64

	shrinkRate float64
	minRadius  float64
	state      ZoneState
}

// NewSafeZone creates the zone covering the play area, centred on the
// window midpoint.
func NewSafeZone(cfg Config) *SafeZone {
	return &SafeZone{
		Center:     cfg.Center(),
		Radius:     cfg.ZoneStartRadius(),
		shrinkRate: cfg.ZoneShrinkRate,
		minRadius:  cfg.ZoneMinRadius,
		state:      ZoneShrinking,
	}
}

// Update shrinks the radius by one frame's worth. Once the radius reaches
// the floor the zone transitions to Held and never shrinks (or grows)
// again.
func (z *SafeZone) Update() {
	if z.state != ZoneShrinking {
		return
	}
	z.Radius -= z.shrinkRate
	if z.Radius <= z.minRadius {
		z.Radius = z.minRadius
		z.state = ZoneHeld
	}
}

// Contains reports whether p is strictly inside the zone. A point exactly
// on the boundary counts as outside.
func (z *SafeZone) Contains(p Vec) bool {
	return Dist(p, z.Center) < z.Radius
}

// State returns the current zone stage.
func (z *SafeZone) State() ZoneState { return z.state }
