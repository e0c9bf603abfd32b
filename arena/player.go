package arena

// Player is the spawner's point of reference. It is owned by the host loop.
type Player struct {
	X, Y  float64
	Speed float64 // units per second
	Dead  bool
}

func NewPlayer(x, y, speed float64) *Player {
	return &Player{X: x, Y: y, Speed: speed}
}

// Move shifts the player by a direction scaled by Speed and dt. Dead players
// stay put.
func (p *Player) Move(dirX, dirY, dt float64) {
	if p == nil || p.Dead {
		return
	}
	p.X += dirX * p.Speed * dt
	p.Y += dirY * p.Speed * dt
}

func (p *Player) Kill() {
	if p != nil {
		p.Dead = true
	}
}

func (p *Player) Revive() {
	if p != nil {
		p.Dead = false
	}
}
