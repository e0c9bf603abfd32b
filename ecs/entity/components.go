package entity

import (
	"fmt"

	"github.com/milk9111/spawner/ecs"
	"github.com/milk9111/spawner/ecs/component"
	"github.com/milk9111/spawner/prefabs"
)

func buildEnemyTag(raw any) (attachFn, error) {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyTagComponentSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("decode enemy_tag spec: %w", err)
	}
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{Name: spec.Name})
	}, nil
}

func buildTransform(raw any) (attachFn, error) {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			X:        spec.X,
			Y:        spec.Y,
			ScaleX:   spec.ScaleX,
			ScaleY:   spec.ScaleY,
			Rotation: spec.Rotation,
		})
	}, nil
}

func buildVelocity(_ any) (attachFn, error) {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	}, nil
}

func buildHealth(raw any) (attachFn, error) {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Initial == 0 {
		spec.Initial = 1
	}
	if spec.Current == 0 {
		spec.Current = spec.Initial
	}
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Initial: spec.Initial, Current: spec.Current})
	}, nil
}

func buildRender(raw any) (attachFn, error) {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderComponentSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("decode render spec: %w", err)
	}
	if spec.Radius <= 0 {
		spec.Radius = 4
	}
	r := component.Render{Radius: spec.Radius, Layer: spec.Layer}
	if spec.Color != nil {
		r.Color = spec.Color.Color
	}
	return func(w *ecs.World, e ecs.Entity) error {
		c := r
		return ecs.Add(w, e, component.RenderComponent.Kind(), &c)
	}, nil
}

func buildChase(raw any) (attachFn, error) {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ChaseComponentSpec](raw)
	if err != nil {
		return nil, fmt.Errorf("decode chase spec: %w", err)
	}
	if spec.Speed < 0 {
		return nil, fmt.Errorf("chase speed %v must not be negative", spec.Speed)
	}
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, component.ChaseComponent.Kind(), &component.Chase{Speed: spec.Speed, StopDistance: spec.StopDistance})
	}, nil
}
