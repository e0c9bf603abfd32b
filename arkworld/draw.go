//go:build !headless

package arkworld

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (b *Backend) Draw(screen *ebiten.Image, camX, camY float64) {
	query := b.filter.Query()
	for query.Next() {
		p, _, e := query.Get()
		vector.DrawFilledCircle(screen, float32(p.X-camX), float32(p.Y-camY), float32(e.Radius), e.Color, true)
	}
}
