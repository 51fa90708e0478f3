package game

// Headless harness used by the tests and by cmd/headless-run. It drives the
// world with a fixed timestep and scripted input — no Ebiten dependency,
// deterministic under a fixed seed.

// HeadlessDT is the fixed per-frame timestep (60 Hz) used outside the
// windowed build.
const HeadlessDT = 1.0 / 60.0

// worldOptionKind controls the pass in which an option is applied.
type worldOptionKind int

const (
	worldOptSetup  worldOptionKind = iota // config, seed, verbose — applied first
	worldOptEntity                        // placed entities and scripts — applied after construction
)

type worldSetup struct {
	cfg     Config
	seed    int64
	verbose bool
}

// WorldOption is a builder function applied to a TestWorld during
// construction.
type WorldOption struct {
	kind    worldOptionKind
	setupFn func(*worldSetup)
	fn      func(*TestWorld)
}

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) WorldOption {
	return WorldOption{kind: worldOptSetup, setupFn: func(ws *worldSetup) {
		ws.cfg = cfg
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) WorldOption {
	return WorldOption{kind: worldOptSetup, setupFn: func(ws *worldSetup) {
		ws.seed = seed
	}}
}

// WithVerbose enables per-frame verbose logging.
func WithVerbose(v bool) WorldOption {
	return WorldOption{kind: worldOptSetup, setupFn: func(ws *worldSetup) {
		ws.verbose = v
	}}
}

// WithNoInitialEnemies suppresses the starting wave so a scenario can place
// enemies explicitly.
func WithNoInitialEnemies() WorldOption {
	return WorldOption{kind: worldOptSetup, setupFn: func(ws *worldSetup) {
		ws.cfg.InitialEnemies = 0
	}}
}

// WithPlayerAt moves the player to (x,y) before the run starts.
func WithPlayerAt(x, y float64) WorldOption {
	return WorldOption{kind: worldOptEntity, fn: func(tw *TestWorld) {
		tw.Player.Pos = Vec{X: x, Y: y}
	}}
}

// WithEnemyAt places an enemy at (x,y) with default health and speed.
func WithEnemyAt(x, y float64) WorldOption {
	return WorldOption{kind: worldOptEntity, fn: func(tw *TestWorld) {
		cfg := tw.Config()
		tw.Enemies = append(tw.Enemies, &Enemy{Entity: Entity{
			Pos:    Vec{X: x, Y: y},
			Speed:  cfg.EnemySpeed,
			Health: cfg.EnemyHealth,
		}})
	}}
}

// WithEnemy places an enemy with explicit health and speed.
func WithEnemy(x, y float64, health int, speed float64) WorldOption {
	return WorldOption{kind: worldOptEntity, fn: func(tw *TestWorld) {
		tw.Enemies = append(tw.Enemies, &Enemy{Entity: Entity{
			Pos:    Vec{X: x, Y: y},
			Speed:  speed,
			Health: health,
		}})
	}}
}

// WithProjectileAt places a projectile in flight with the given velocity.
func WithProjectileAt(x, y, vx, vy float64) WorldOption {
	return WorldOption{kind: worldOptEntity, fn: func(tw *TestWorld) {
		tw.Projectiles = append(tw.Projectiles, Projectile{
			Pos:    Vec{X: x, Y: y},
			Vel:    Vec{X: vx, Y: vy},
			Radius: tw.Config().BulletRadius,
		})
	}}
}

// WithScript installs the per-frame input source. The script sees the live
// world, so it can aim at actual enemy positions.
func WithScript(fn func(w *World, frame int) Input) WorldOption {
	return WorldOption{kind: worldOptEntity, fn: func(tw *TestWorld) {
		tw.Script = fn
	}}
}

// TestWorld wraps a World with scripted input and a captured RunLog.
type TestWorld struct {
	*World
	Log    *RunLog
	Script func(w *World, frame int) Input
}

// NewTestWorld constructs a harnessed world in two ordered passes: setup
// options first, then entity placement once the world exists.
func NewTestWorld(opts ...WorldOption) *TestWorld {
	ws := worldSetup{cfg: DefaultConfig(), seed: 1}
	for _, o := range opts {
		if o.kind == worldOptSetup {
			o.setupFn(&ws)
		}
	}

	tw := &TestWorld{
		World: NewWorld(ws.cfg, ws.seed),
		Log:   NewRunLog(ws.verbose),
	}
	tw.AttachLog(tw.Log)
	for _, o := range opts {
		if o.kind == worldOptEntity {
			o.fn(tw)
		}
	}
	return tw
}

func (tw *TestWorld) input(frame int) Input {
	if tw.Script == nil {
		return Input{}
	}
	return tw.Script(tw.World, frame)
}

// RunFrames advances the simulation n frames at the fixed timestep.
func (tw *TestWorld) RunFrames(n int) {
	for i := 0; i < n; i++ {
		tw.Step(tw.input(tw.Frame+1), HeadlessDT)
	}
}

// RunUntil advances the simulation up to maxFrames, stopping early when the
// predicate holds. Returns the frame it was satisfied on, or -1.
func (tw *TestWorld) RunUntil(pred func(*World) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		tw.Step(tw.input(tw.Frame+1), HeadlessDT)
		if pred(tw.World) {
			return tw.Frame
		}
	}
	return -1
}
