package entity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/spawner/ecs"
	"github.com/milk9111/spawner/ecs/system"
	"github.com/milk9111/spawner/logger"
	"github.com/milk9111/spawner/spawn"
)

// Backend spawns enemies as ECS entities built from a converted prefab.
type Backend struct {
	prefab string
	world  *ecs.World
	tpl    *Template
	log    *zap.Logger

	chase     *system.ChaseSystem
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
}

var _ spawn.Backend = (*Backend)(nil)

// NewBackend wires a backend around w. dt is the fixed step handed to the
// chase system.
func NewBackend(w *ecs.World, prefab string, dt float64, log *zap.Logger) *Backend {
	chase := system.NewChaseSystem(dt)
	return &Backend{
		prefab:    prefab,
		world:     w,
		log:       logger.OrNop(log),
		chase:     chase,
		scheduler: ecs.NewScheduler(chase),
		render:    system.NewRenderSystem(),
	}
}

// Prepare converts the prefab. It must run before Spawn.
func (b *Backend) Prepare() error {
	if b.world == nil {
		return fmt.Errorf("entity backend: world is nil")
	}
	tpl, err := ConvertPrefab(b.prefab)
	if err != nil {
		return err
	}
	b.tpl = tpl
	b.log.Info("entity template ready",
		zap.String("prefab", b.prefab),
		zap.Strings("components", tpl.Components()),
	)
	return nil
}

func (b *Backend) Spawn(pos spawn.Position) {
	if b.tpl == nil {
		b.log.Error("entity backend spawn before prepare", zap.String("prefab", b.prefab))
		return
	}
	if _, err := b.tpl.InstantiateAt(b.world, pos.X, pos.Y); err != nil {
		b.log.Error("entity spawn failed", zap.Error(err))
	}
}

func (b *Backend) World() *ecs.World {
	return b.world
}

func (b *Backend) Count() int {
	return ecs.Count(b.world)
}

// Update steers every chaser toward the target and runs the scheduler.
func (b *Backend) Update(targetX, targetY float64) {
	b.chase.SetTarget(targetX, targetY)
	b.scheduler.Update(b.world)
}

