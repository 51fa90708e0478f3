package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hudScale is the integer upscale factor applied to the HUD text.
const hudScale = 2

// Mode is the session's screen stage.
type Mode int

const (
	ModeTitle    Mode = iota // start screen, waiting for Enter
	ModePlaying              // main loop running
	ModeGameOver             // end screen, exits after the fixed delay
)

// Game is the Ebiten presentation adapter. It polls input, drives the
// world one step per frame and draws the resulting state. It holds only
// read references into the world; all mutation happens inside Step.
type Game struct {
	cfg    Config
	assets *Assets

	world *World
	sess  *Session
	mode  Mode

	paused     bool
	prevFrame  time.Time
	gameOverAt time.Time
	final      Summary

	// Offscreen buffer for HUD text: rendered at 1x then blitted at hudScale.
	hudBuf *ebiten.Image
}

// New creates the adapter on the title screen. The world itself is built
// when the player presses Enter.
func New(cfg Config, assets *Assets) *Game {
	return &Game{
		cfg:    cfg,
		assets: assets,
		hudBuf: ebiten.NewImage(cfg.WindowW/hudScale, cfg.WindowH/hudScale),
	}
}

func (g *Game) startRun() {
	g.world = NewWorld(g.cfg, time.Now().UnixNano())
	g.sess = &Session{ScorePath: g.cfg.ScoreFile}
	g.paused = false
	g.prevFrame = time.Now()
	g.mode = ModePlaying
}

func (g *Game) Update() error {
	switch g.mode {
	case ModeTitle:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.startRun()
		}
		return nil

	case ModePlaying:
		return g.updatePlaying()

	case ModeGameOver:
		if time.Since(g.gameOverAt) >= g.cfg.GameOverDelay {
			return ebiten.Termination
		}
		return nil
	}
	return nil
}

func (g *Game) updatePlaying() error {
	// Wall-clock dt drives the fire and spawn timers; recomputed every
	// frame so pausing doesn't bank a huge delta.
	now := time.Now()
	dt := now.Sub(g.prevFrame).Seconds()
	g.prevFrame = now

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if err := CopyReport(g.world.Summary()); err != nil {
			log.Printf("session report: %v", err)
		}
	}

	in := Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.Fire = true
		in.Aim = Vec{X: float64(mx), Y: float64(my)}
	}

	res := g.world.Step(in, dt)

	if res.Fired && g.assets.Shoot != nil {
		_ = g.assets.Shoot.Rewind()
		g.assets.Shoot.Play()
	}

	if res.GameOver {
		g.final = g.world.Summary()
		if _, err := g.sess.PersistOnce(g.final.Score, g.final.Kills); err != nil {
			log.Printf("persist score: %v", err)
		}
		if err := CopyReport(g.final); err != nil {
			log.Printf("session report: %v", err)
		}
		g.gameOverAt = now
		g.mode = ModeGameOver
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case ModeTitle:
		g.drawTitle(screen)
	case ModePlaying:
		g.drawPlayfield(screen)
	case ModeGameOver:
		g.drawGameOver(screen)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.drawCentered(screen, "THE LAST HELLDIVER", 100,
		color.RGBA{R: 220, G: 30, B: 30, A: 255})

	lore := []string{
		"In a world consumed by chaos, only one survives.",
		"You are the last Helldiver - forged in fire, bound by honor.",
		"Survive the void. Protect the zone. Write your legend.",
	}
	for i, line := range lore {
		g.drawCentered(screen, line, 200+i*26,
			color.RGBA{R: 180, G: 180, B: 180, A: 255})
	}

	g.drawCentered(screen, "Press ENTER to Begin Your Dive", 350, color.White)
}

func (g *Game) drawPlayfield(screen *ebiten.Image) {
	if g.assets.Background != nil {
		drawStretched(screen, g.assets.Background, g.cfg.WindowW, g.cfg.WindowH)
	} else {
		screen.Fill(color.RGBA{R: 18, G: 16, B: 24, A: 255})
	}

	// Safe zone: fire ring closing in on the centre.
	z := g.world.Zone
	cx, cy, r := float32(z.Center.X), float32(z.Center.Y), float32(z.Radius)
	if g.assets.ZoneImg != nil {
		drawScaledCentered(screen, g.assets.ZoneImg, z.Center, z.Radius)
	} else {
		vector.FillCircle(screen, cx, cy, r, color.RGBA{R: 255, G: 120, B: 20, A: 26}, true)
		vector.StrokeCircle(screen, cx, cy, r, 2.5, color.RGBA{R: 255, G: 110, B: 20, A: 200}, true)
	}

	for i := range g.world.Projectiles {
		p := &g.world.Projectiles[i]
		vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius),
			color.RGBA{R: 255, G: 230, B: 40, A: 255}, true)
	}

	for _, e := range g.world.Enemies {
		if g.assets.EnemyImg != nil {
			drawSpriteCentered(screen, g.assets.EnemyImg, e.Pos)
			continue
		}
		vector.FillCircle(screen, float32(e.Pos.X), float32(e.Pos.Y),
			float32(g.cfg.EnemyHitRadius), color.RGBA{R: 200, G: 40, B: 40, A: 255}, true)
	}

	pl := g.world.Player
	if g.assets.PlayerImg != nil {
		drawSpriteCentered(screen, g.assets.PlayerImg, pl.Pos)
	} else {
		vector.FillCircle(screen, float32(pl.Pos.X), float32(pl.Pos.Y),
			float32(g.cfg.EnemyHitRadius), color.RGBA{R: 90, G: 200, B: 255, A: 255}, true)
		vector.StrokeCircle(screen, float32(pl.Pos.X), float32(pl.Pos.Y),
			float32(g.cfg.EnemyHitRadius)+2, 1.0, color.White, true)
	}

	g.drawHUD(screen)

	if g.paused {
		g.drawCentered(screen, "PAUSED", g.cfg.WindowH/2, color.White)
	}
}

// drawHUD renders the status line into hudBuf at 1x and blits it at
// hudScale so the debug font stays crisp.
func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("%s | Score: %d | Kills: %d | Health: %d",
		g.cfg.Title, g.world.Score, g.world.Kills, g.world.Player.Health)

	g.hudBuf.Clear()
	ebitenutil.DebugPrintAt(g.hudBuf, hud, 5, 5)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, opts)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	if g.assets.GameOverBg != nil {
		drawStretched(screen, g.assets.GameOverBg, g.cfg.WindowW, g.cfg.WindowH)
	} else {
		screen.Fill(color.RGBA{R: 24, G: 8, B: 8, A: 255})
	}

	red := color.RGBA{R: 220, G: 30, B: 30, A: 255}
	g.drawCentered(screen, "The Last Helldiver Fell", g.cfg.WindowH/2, red)
	g.drawCentered(screen,
		fmt.Sprintf("Final Score: %d | Kills: %d", g.final.Score, g.final.Kills),
		g.cfg.WindowH/2+30, red)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.WindowW, g.cfg.WindowH
}

// drawCentered draws s horizontally centred with its baseline at y.
func (g *Game) drawCentered(dst *ebiten.Image, s string, y int, c color.Color) {
	bounds := text.BoundString(g.assets.Face, s)
	x := (g.cfg.WindowW - bounds.Dx()) / 2
	text.Draw(dst, s, g.assets.Face, x, y, c)
}

// drawStretched fills the whole window with img.
func drawStretched(dst *ebiten.Image, img *ebiten.Image, w, h int) {
	b := img.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	dst.DrawImage(img, opts)
}

// drawSpriteCentered draws img with its centre at pos, matching the
// centre-origin sprites of the original assets.
func drawSpriteCentered(dst *ebiten.Image, img *ebiten.Image, pos Vec) {
	b := img.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	opts.GeoM.Translate(pos.X, pos.Y)
	dst.DrawImage(img, opts)
}

// drawScaledCentered draws img centred at pos, scaled so its half-width
// equals radius, so the zone texture tracks the shrinking boundary.
func drawScaledCentered(dst *ebiten.Image, img *ebiten.Image, pos Vec, radius float64) {
	b := img.Bounds()
	scale := radius / (float64(b.Dx()) / 2)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(pos.X, pos.Y)
	dst.DrawImage(img, opts)
}
