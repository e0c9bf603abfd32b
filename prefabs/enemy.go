package prefabs

import (
	"fmt"
	"image/color"
)

// EnemyStats is the part of an enemy prefab every backend needs, with
// defaults applied. Color is nil when the prefab has no render colour.
type EnemyStats struct {
	Name         string
	Radius       float64
	Color        color.Color
	Health       int
	Speed        float64
	StopDistance float64
}

const (
	defaultEnemyRadius = 4
	defaultEnemyHealth = 1
)

func LoadEnemyStats(filename string) (EnemyStats, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return EnemyStats{}, err
	}
	stats, err := DecodeEnemyStats(spec)
	if err != nil {
		return EnemyStats{}, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return stats, nil
}

// DecodeEnemyStats reads the render, health and chase blocks of spec.
func DecodeEnemyStats(spec EntityBuildSpec) (EnemyStats, error) {
	if len(spec.Components) == 0 {
		return EnemyStats{}, fmt.Errorf("prefab does not define components")
	}
	stats := EnemyStats{Name: spec.Name, Radius: defaultEnemyRadius, Health: defaultEnemyHealth}

	render, err := DecodeComponentSpec[RenderComponentSpec](spec.Components["render"])
	if err != nil {
		return EnemyStats{}, fmt.Errorf("decode render: %w", err)
	}
	if render.Radius > 0 {
		stats.Radius = render.Radius
	}
	if render.Color != nil {
		stats.Color = render.Color.Color
	}

	health, err := DecodeComponentSpec[HealthComponentSpec](spec.Components["health"])
	if err != nil {
		return EnemyStats{}, fmt.Errorf("decode health: %w", err)
	}
	if health.Initial > 0 {
		stats.Health = health.Initial
	}

	chase, err := DecodeComponentSpec[ChaseComponentSpec](spec.Components["chase"])
	if err != nil {
		return EnemyStats{}, fmt.Errorf("decode chase: %w", err)
	}
	stats.Speed = chase.Speed
	stats.StopDistance = chase.StopDistance
	return stats, nil
}
