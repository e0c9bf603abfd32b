//go:build !headless

package entity

import "github.com/hajimehoshi/ebiten/v2"

func (b *Backend) Draw(screen *ebiten.Image, camX, camY float64) {
	b.render.Draw(b.world, screen, camX, camY)
}
