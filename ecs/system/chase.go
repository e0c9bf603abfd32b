package system

import (
	"github.com/milk9111/spawner/common"
	"github.com/milk9111/spawner/ecs"
	"github.com/milk9111/spawner/ecs/component"
)

// ChaseSystem sets each chaser's velocity toward the target and integrates
// its transform by one fixed step.
type ChaseSystem struct {
	dt      float64
	targetX float64
	targetY float64
}

func NewChaseSystem(dt float64) *ChaseSystem {
	return &ChaseSystem{dt: dt}
}

// SetTarget moves the point every chaser heads for.
func (s *ChaseSystem) SetTarget(x, y float64) {
	s.targetX = x
	s.targetY = y
}

func (s *ChaseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), component.ChaseComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, v *component.Velocity, c *component.Chase) {
			v.X, v.Y = common.Steer(t.X, t.Y, s.targetX, s.targetY, c.Speed, c.StopDistance)
			t.X += v.X * s.dt
			t.Y += v.Y * s.dt
		})
}
