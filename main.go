package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/constellation-go/internal/config"
	"github.com/olivierh59500/constellation-go/internal/game"
)

func main() {
	cfg := config.Default()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "initial window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "initial window height")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "target ticks per second; only input polling follows it, frames run at the display refresh rate")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 seeds from the clock")
	flag.BoolVar(&cfg.Naive, "naive", cfg.Naive, "check every pair instead of using the grid")
	flag.BoolVar(&cfg.ShowStats, "stats", cfg.ShowStats, "show frame statistics")
	flag.Float64Var(&cfg.Twinkle, "twinkle", cfg.Twinkle, "point alpha noise amount in [0,1]")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.New(cfg, rand.New(rand.NewSource(seed)))

	// Set up Ebitengine window
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Constellation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	// Run the game loop
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
