package system

import (
	"math"
	"testing"

	"github.com/milk9111/spawner/ecs"
	"github.com/milk9111/spawner/ecs/component"
)

func TestChaseSystemMovesTowardTarget(t *testing.T) {
	tests := []struct {
		name     string
		start    component.Transform
		chase    component.Chase
		wantMove bool
	}{
		{"far_away", component.Transform{X: 0, Y: 0}, component.Chase{Speed: 60}, true},
		{"inside_stop_distance", component.Transform{X: 95, Y: 0}, component.Chase{Speed: 60, StopDistance: 10}, false},
		{"zero_speed", component.Transform{X: 0, Y: 0}, component.Chase{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			start := tc.start
			chase := tc.chase
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &start); err != nil {
				t.Fatal(err)
			}
			if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
				t.Fatal(err)
			}
			if err := ecs.Add(w, e, component.ChaseComponent.Kind(), &chase); err != nil {
				t.Fatal(err)
			}

			s := NewChaseSystem(0.5)
			s.SetTarget(100, 0)
			s.Update(w)

			got, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			moved := got.X != tc.start.X || got.Y != tc.start.Y
			if moved != tc.wantMove {
				t.Fatalf("moved=%v want %v (now %v,%v)", moved, tc.wantMove, got.X, got.Y)
			}
			if tc.wantMove && math.Abs(got.X-tc.chase.Speed*0.5) > 1e-9 {
				t.Fatalf("expected x=%v, got %v", tc.chase.Speed*0.5, got.X)
			}
		})
	}
}

func TestChaseSystemSkipsEntitiesWithoutChase(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 1, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		t.Fatal(err)
	}

	s := NewChaseSystem(1)
	s.SetTarget(50, 50)
	s.Update(w)

	got, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if got.X != 1 || got.Y != 2 {
		t.Fatalf("entity without chase moved to %v,%v", got.X, got.Y)
	}
}
