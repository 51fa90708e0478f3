package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"helldiver/internal/game"
)

func main() {
	var assetsDir string
	var scoreFile string
	flag.StringVar(&assetsDir, "assets", "", "directory with textures, font and sounds (empty = procedural fallbacks)")
	flag.StringVar(&scoreFile, "score-file", "", "override the score file path")
	flag.Parse()

	cfg := game.DefaultConfig()
	if scoreFile != "" {
		cfg.ScoreFile = scoreFile
	}

	assets, err := game.LoadAssets(assetsDir)
	if err != nil {
		log.Fatalf("load assets: %v", err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	if err := ebiten.RunGame(game.New(cfg, assets)); err != nil {
		log.Fatal(err)
	}
}
