package system

import (
	"image/color"
	"sort"

	"github.com/milk9111/spawner/ecs"
	"github.com/milk9111/spawner/ecs/component"
)

var defaultEnemyColor = color.RGBA{R: 200, G: 60, B: 60, A: 255}

type RenderSystem struct {
	drawables []drawable
}

type drawable struct {
	e ecs.Entity
	t *component.Transform
	r *component.Render
}

// Circle is one resolved draw call in world coordinates.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  color.Color
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Circles returns every Transform+Render entity as a circle, lowest layer
// first. Scale and the default colour are already applied.
func (r *RenderSystem) Circles(w *ecs.World) []Circle {
	if r == nil || w == nil {
		return nil
	}

	r.drawables = r.drawables[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.RenderComponent.Kind(), func(e ecs.Entity, t *component.Transform, rc *component.Render) {
		r.drawables = append(r.drawables, drawable{e: e, t: t, r: rc})
	})
	sort.SliceStable(r.drawables, func(i, j int) bool {
		if r.drawables[i].r.Layer != r.drawables[j].r.Layer {
			return r.drawables[i].r.Layer < r.drawables[j].r.Layer
		}
		return uint64(r.drawables[i].e) < uint64(r.drawables[j].e)
	})

	out := make([]Circle, 0, len(r.drawables))
	for _, d := range r.drawables {
		clr := d.r.Color
		if clr == nil {
			clr = defaultEnemyColor
		}
		radius := d.r.Radius
		if d.t.ScaleX > 0 {
			radius *= d.t.ScaleX
		}
		out = append(out, Circle{X: d.t.X, Y: d.t.Y, Radius: radius, Color: clr})
	}
	return out
}
