package arkworld

import (
	"fmt"
	"image/color"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/milk9111/spawner/common"
	"github.com/milk9111/spawner/logger"
	"github.com/milk9111/spawner/prefabs"
	"github.com/milk9111/spawner/spawn"
)

var defaultEnemyColor = color.RGBA{R: 80, G: 180, B: 90, A: 255}

// Backend spawns enemies into an ark archetype world.
type Backend struct {
	prefab string
	dt     float64
	log    *zap.Logger

	world   ecs.World
	enemies *ecs.Map3[Position, Velocity, Enemy]
	filter  *ecs.Filter3[Position, Velocity, Enemy]

	template *Enemy
}

var _ spawn.Backend = (*Backend)(nil)

func NewBackend(prefab string, dt float64, log *zap.Logger) *Backend {
	b := &Backend{
		prefab: prefab,
		dt:     dt,
		log:    logger.OrNop(log),
		world:  ecs.NewWorld(),
	}
	b.enemies = ecs.NewMap3[Position, Velocity, Enemy](&b.world)
	b.filter = ecs.NewFilter3[Position, Velocity, Enemy](&b.world)
	return b
}

// Prepare converts the prefab into the Enemy component every spawn copies.
func (b *Backend) Prepare() error {
	spec, err := prefabs.LoadEntityBuildSpec(b.prefab)
	if err != nil {
		return fmt.Errorf("ark backend: %w", err)
	}
	tpl, err := convert(spec)
	if err != nil {
		return fmt.Errorf("ark backend: %q: %w", b.prefab, err)
	}
	b.template = tpl
	b.log.Info("ark template ready", zap.String("prefab", b.prefab), zap.String("name", tpl.Name))
	return nil
}

func convert(spec prefabs.EntityBuildSpec) (*Enemy, error) {
	stats, err := prefabs.DecodeEnemyStats(spec)
	if err != nil {
		return nil, err
	}
	tpl := &Enemy{
		Name:         stats.Name,
		Health:       stats.Health,
		Radius:       stats.Radius,
		Speed:        stats.Speed,
		StopDistance: stats.StopDistance,
		Color:        stats.Color,
	}
	if tpl.Color == nil {
		tpl.Color = defaultEnemyColor
	}
	return tpl, nil
}

func (b *Backend) Spawn(pos spawn.Position) {
	if b.template == nil {
		b.log.Error("ark backend spawn before prepare", zap.String("prefab", b.prefab))
		return
	}
	enemy := *b.template
	b.enemies.NewEntity(&Position{X: pos.X, Y: pos.Y}, &Velocity{}, &enemy)
}

// Positions returns a snapshot of every enemy position.
func (b *Backend) Positions() []Position {
	out := make([]Position, 0)
	query := b.filter.Query()
	for query.Next() {
		p, _, _ := query.Get()
		out = append(out, *p)
	}
	return out
}

func (b *Backend) Count() int {
	n := 0
	query := b.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

func (b *Backend) Update(targetX, targetY float64) {
	query := b.filter.Query()
	for query.Next() {
		p, v, e := query.Get()
		v.X, v.Y = common.Steer(p.X, p.Y, targetX, targetY, e.Speed, e.StopDistance)
		p.X += v.X * b.dt
		p.Y += v.Y * b.dt
	}
}

