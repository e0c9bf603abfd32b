package arena

import (
	"math/rand/v2"

	"github.com/milk9111/spawner/spawn"
)

// Arena answers the spawner's questions about the player. It replaces a
// process-wide settings singleton and is passed to the controller explicitly.
type Arena struct {
	player    *Player
	rng       *rand.Rand
	placement Placement
}

var _ spawn.PositionProvider = (*Arena)(nil)

// New builds an arena around player. A nil placement means Disk.
func New(player *Player, seed uint64, placement Placement) *Arena {
	if placement == nil {
		placement = Disk{}
	}
	return &Arena{
		player:    player,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		placement: placement,
	}
}

func (a *Arena) Player() *Player {
	return a.player
}

func (a *Arena) IsPlayerDead() bool {
	return a.player == nil || a.player.Dead
}

func (a *Arena) PositionAroundPlayer(radius float64) spawn.Position {
	var px, py float64
	if a.player != nil {
		px, py = a.player.X, a.player.Y
	}
	if radius <= 0 {
		return spawn.Position{X: px, Y: py}
	}
	dx, dy := a.placement.Offset(a.rng, radius)
	dx, dy = clampToRadius(dx, dy, radius)
	return spawn.Position{X: px + dx, Y: py + dy}
}
