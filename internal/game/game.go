// Package game hosts the constellation renderer inside an ebiten window.
package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/constellation-go/internal/config"
	"github.com/olivierh59500/constellation-go/internal/constellation"
)

// Game implements ebiten.Game. Each Draw runs exactly one pending frame
// callback, which makes ebiten's draw cadence the frame scheduler.
type Game struct {
	renderer  *constellation.Renderer
	surface   *screenSurface
	frame     func()
	showStats bool
}

// New creates the game and starts the renderer on a cfg.Width x cfg.Height surface.
func New(cfg config.Config, rng *rand.Rand) *Game {
	g := &Game{
		surface: &screenSurface{
			width:      float64(cfg.Width),
			height:     float64(cfg.Height),
			background: config.Background,
		},
		showStats: cfg.ShowStats,
	}
	g.renderer = constellation.NewRenderer(cfg, g.surface, rng)
	g.renderer.Start(g)
	return g
}

// RequestFrame stores the callback for the next Draw.
func (g *Game) RequestFrame(callback func()) {
	g.frame = callback
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.showStats = !g.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.renderer.SetStrategy(g.renderer.Strategy().Toggle())
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	if cb := g.frame; cb != nil {
		g.frame = nil
		cb()
	}

	if g.showStats {
		st := g.renderer.Stats()
		msg := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f\n%s: %d points, %d checks, %d lines",
			ebiten.ActualTPS(), ebiten.ActualFPS(), st.Strategy, st.Points, st.Candidates, st.Lines)
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	}
}

// Layout tracks the window size; any change rebuilds the constellation.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return int(g.surface.width), int(g.surface.height)
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.surface.width || h != g.surface.height {
		log.Printf("resize %.0fx%.0f -> %dx%d", g.surface.width, g.surface.height, outsideWidth, outsideHeight)
		g.surface.width, g.surface.height = w, h
		g.renderer.Resize()
	}
	return outsideWidth, outsideHeight
}
