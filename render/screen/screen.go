// Package screen adapts an ebiten screen image to render.Backend.
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rotisserie/eris"

	"ebiten-circles/render"
)

// ErrNoTarget is returned when a draw call arrives before Bind
var ErrNoTarget = eris.New("no screen bound")

var _ render.Backend = (*Backend)(nil)

// Backend draws onto the *ebiten.Image handed to Game.Draw
type Backend struct {
	target     *ebiten.Image
	Background color.Color
	Fill       color.Color
	Outline    color.Color
	AntiAlias  bool
}

// NewBackend creates a backend with black background and white circles
func NewBackend() *Backend {
	return &Backend{
		Background: color.RGBA{0, 0, 0, 255},
		Fill:       color.RGBA{255, 255, 255, 255},
		Outline:    color.RGBA{255, 255, 255, 255},
		AntiAlias:  true,
	}
}

// Bind sets the image the next frame draws onto
func (b *Backend) Bind(target *ebiten.Image) {
	b.target = target
}

// Clear fills the bound image with the background color
func (b *Backend) Clear() error {
	if b.target == nil {
		return ErrNoTarget
	}
	b.target.Fill(b.Background)
	return nil
}

// DrawFilledCircle fills a circle and strokes its outline with width stroke
func (b *Backend) DrawFilledCircle(x, y, radius, stroke float32) error {
	if b.target == nil {
		return ErrNoTarget
	}
	vector.DrawFilledCircle(b.target, x, y, radius, b.Fill, b.AntiAlias)
	if stroke > 0 {
		vector.StrokeCircle(b.target, x, y, radius, stroke, b.Outline, b.AntiAlias)
	}
	return nil
}

// Present releases the bound image. ebiten shows the frame once Draw returns.
func (b *Backend) Present() error {
	if b.target == nil {
		return ErrNoTarget
	}
	b.target = nil
	return nil
}
