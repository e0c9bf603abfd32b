//go:build !headless

package session

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spawner/arkworld"
	"github.com/milk9111/spawner/ecs/entity"
	"github.com/milk9111/spawner/obj"
)

type drawer interface {
	Draw(screen *ebiten.Image, camX, camY float64)
}

var (
	_ drawer = (*obj.Backend)(nil)
	_ drawer = (*entity.Backend)(nil)
	_ drawer = (*arkworld.Backend)(nil)
)

// Draw renders the backend's enemies only. The host draws the player.
func (s *Session) Draw(screen *ebiten.Image, camX, camY float64) {
	if d, ok := s.scene.(drawer); ok {
		d.Draw(screen, camX, camY)
	}
}
