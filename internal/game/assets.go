package game

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "image/jpeg" // decoder for .jpg backgrounds
	_ "image/png"  // decoder for .png sprites

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const sampleRate = 44100

// Assets bundles everything the presentation adapter draws and plays.
// With no assets dir the images stay nil (entities render as vector
// shapes), the font falls back to the built-in bitmap face and the shoot
// sound to a synthesised beep, keeping the binary self-contained.
type Assets struct {
	Background *ebiten.Image
	PlayerImg  *ebiten.Image
	EnemyImg   *ebiten.Image
	ZoneImg    *ebiten.Image
	GameOverBg *ebiten.Image

	Shoot *audio.Player
	Face  font.Face
}

// LoadAssets loads textures, font and the shoot sound from dir. Any file
// that cannot be opened or decoded is a startup error — the game fails
// fast instead of running with blank sprites. An empty dir selects the
// procedural fallbacks.
func LoadAssets(dir string) (*Assets, error) {
	ctx := audio.NewContext(sampleRate)

	if dir == "" {
		return &Assets{
			Shoot: newBeep(ctx, 950, 0.07),
			Face:  basicfont.Face7x13,
		}, nil
	}

	a := &Assets{}
	for _, tex := range []struct {
		name string
		dst  **ebiten.Image
	}{
		{"background.jpeg", &a.Background},
		{"player.png", &a.PlayerImg},
		{"enemy.png", &a.EnemyImg},
		{"zone_fire.png", &a.ZoneImg},
		{"gameover.jpg", &a.GameOverBg},
	} {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, tex.name))
		if err != nil {
			return nil, fmt.Errorf("load texture %s: %w", tex.name, err)
		}
		*tex.dst = img
	}

	shoot, err := loadWav(ctx, filepath.Join(dir, "shoot.wav"))
	if err != nil {
		return nil, fmt.Errorf("load shoot sound: %w", err)
	}
	a.Shoot = shoot

	face, err := loadFace(filepath.Join(dir, "arial.ttf"))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	a.Face = face
	return a, nil
}

// loadWav decodes a whole WAV file into memory so the player never reads
// from a closed file.
func loadWav(ctx *audio.Context, path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return audio.NewPlayer(ctx, stream)
}

func loadFace(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    20,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// readSeekNopCloser lets a bytes.Reader stand in for a closable stream.
type readSeekNopCloser struct{ *bytes.Reader }

func (readSeekNopCloser) Close() error { return nil }

// newBeep synthesises a short sine beep so the game has a shoot sound even
// without a WAV on disk.
func newBeep(ctx *audio.Context, freq, durSec float64) *audio.Player {
	n := int(sampleRate * durSec)
	pcm := make([]byte, n*4) // 16-bit stereo
	const amp = 0.35
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		s := int16(v * amp * 32767)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	p, _ := audio.NewPlayer(ctx, readSeekNopCloser{bytes.NewReader(pcm)})
	return p
}
