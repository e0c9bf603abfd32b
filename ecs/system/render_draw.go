//go:build !headless

package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/spawner/ecs"
)

// Draw renders Circles offset by the camera position.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, camX, camY float64) {
	if screen == nil {
		return
	}
	for _, c := range r.Circles(w) {
		vector.DrawFilledCircle(screen, float32(c.X-camX), float32(c.Y-camY), float32(c.Radius), c.Color, true)
	}
}
