//go:build !headless

package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (e *Enemy) Draw(screen *ebiten.Image, camX, camY float64) {
	x, y := e.Position()
	vector.DrawFilledCircle(screen, float32(x-camX), float32(y-camY), float32(e.Prefab.Radius), e.Prefab.Color, true)
}

func (b *Backend) Draw(screen *ebiten.Image, camX, camY float64) {
	for _, e := range b.enemies {
		e.Draw(screen, camX, camY)
	}
}
