package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-circles/app"
	"ebiten-circles/config"
	"ebiten-circles/render/screen"
)

// overlayMessages is how many recent position messages the overlay shows
const overlayMessages = 4

// Game implements ebiten.Game interface.
type Game struct {
	app    *app.App
	screen *screen.Backend
	cfg    config.Config
	// err holds the first draw failure; Update returns it to stop RunGame
	err error
}

// NewGame creates a new game instance
func NewGame(a *app.App, cfg config.Config) *Game {
	return &Game{
		app:    a,
		screen: screen.NewBackend(),
		cfg:    cfg,
	}
}

// Update runs one scheduler tick.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	g.app.Update()
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(img *ebiten.Image) {
	g.screen.Bind(img)
	if err := g.app.Draw(g.screen); err != nil {
		g.err = err
		return
	}

	if g.cfg.ShowFPS {
		lines := []string{fmt.Sprintf("FPS: %.1f TPS: %.1f tick: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.app.Scheduler.CurrentTick())}
		lines = append(lines, g.app.Messages.RecentMessages(overlayMessages)...)
		ebitenutil.DebugPrint(img, strings.Join(lines, "\n"))
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
