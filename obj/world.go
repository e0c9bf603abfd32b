package obj

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/spawner/logger"
	"github.com/milk9111/spawner/spawn"
)

// Backend spawns enemies as plain objects sharing one physics space.
type Backend struct {
	prefabPath string
	dt         float64
	log        *zap.Logger

	prefab  *EnemyPrefab
	space   *cp.Space
	enemies []*Enemy
}

var _ spawn.Backend = (*Backend)(nil)

func NewBackend(prefabPath string, dt float64, log *zap.Logger) *Backend {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &Backend{
		prefabPath: prefabPath,
		dt:         dt,
		log:        logger.OrNop(log),
		space:      space,
	}
}

func (b *Backend) Prepare() error {
	prefab, err := LoadEnemyPrefab(b.prefabPath)
	if err != nil {
		return fmt.Errorf("object backend: %w", err)
	}
	b.prefab = prefab
	b.log.Info("object prefab ready", zap.String("prefab", b.prefabPath), zap.String("name", prefab.Name))
	return nil
}

func (b *Backend) Spawn(pos spawn.Position) {
	if b.prefab == nil {
		b.log.Error("object backend spawn before prepare", zap.String("prefab", b.prefabPath))
		return
	}
	b.enemies = append(b.enemies, NewEnemy(b.prefab, pos.X, pos.Y, b.space))
}

func (b *Backend) Enemies() []*Enemy {
	return b.enemies
}

func (b *Backend) Count() int {
	return len(b.enemies)
}

// Update steers every enemy toward the target and steps the space once.
func (b *Backend) Update(targetX, targetY float64) {
	for _, e := range b.enemies {
		e.Steer(targetX, targetY)
	}
	b.space.Step(b.dt)
}

