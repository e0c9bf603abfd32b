package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/spawner/ecs"
	"github.com/milk9111/spawner/ecs/component"
	"github.com/milk9111/spawner/prefabs"
)

// componentBuildFn decodes one prefab component block and returns a function
// that attaches a fresh copy of it to an entity.
type componentBuildFn func(raw any) (attachFn, error)

type attachFn func(w *ecs.World, e ecs.Entity) error

var componentRegistry = map[string]componentBuildFn{
	"enemy_tag": buildEnemyTag,
	"transform": buildTransform,
	"velocity":  buildVelocity,
	"health":    buildHealth,
	"render":    buildRender,
	"chase":     buildChase,
}

var componentBuildOrder = []string{
	"enemy_tag",
	"transform",
	"velocity",
	"health",
	"render",
	"chase",
}

// Template is a prefab converted once into component attachers. Instantiate
// never touches the YAML again.
type Template struct {
	Name     string
	Path     string
	attach   []attachFn
	children []string
}

// ConvertPrefab loads and decodes prefabPath.
func ConvertPrefab(prefabPath string) (*Template, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return nil, fmt.Errorf("convert prefab: load %q: %w", prefabPath, err)
	}
	return ConvertSpec(prefabPath, spec)
}

// ConvertSpec builds a template from an already parsed spec.
func ConvertSpec(prefabPath string, spec prefabs.EntityBuildSpec) (*Template, error) {
	if len(spec.Components) == 0 {
		return nil, fmt.Errorf("convert prefab: %q does not define components", prefabPath)
	}

	unknown := make([]string, 0)
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("convert prefab: %q: no builder for components %v", prefabPath, unknown)
	}

	tpl := &Template{Name: spec.Name, Path: prefabPath}
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		attach, err := componentRegistry[name](raw)
		if err != nil {
			return nil, fmt.Errorf("convert prefab: %q: %q: %w", prefabPath, name, err)
		}
		tpl.attach = append(tpl.attach, attach)
		tpl.children = append(tpl.children, name)
	}
	return tpl, nil
}

// Components lists the component names in build order.
func (t *Template) Components() []string {
	return append([]string(nil), t.children...)
}

// Instantiate creates a new entity carrying a copy of every template
// component. A partially built entity is destroyed on error.
func (t *Template) Instantiate(w *ecs.World) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("instantiate %q: world is nil", t.Path)
	}
	e := ecs.CreateEntity(w)
	for i, attach := range t.attach {
		if err := attach(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("instantiate %q: add %q: %w", t.Path, t.children[i], err)
		}
	}
	return e, nil
}

// InstantiateAt instantiates and overrides the transform position. Rotation is
// reset so every spawn starts with neutral orientation.
func (t *Template) InstantiateAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := t.Instantiate(w)
	if err != nil {
		return 0, err
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		transform = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	transform.X = x
	transform.Y = y
	transform.Rotation = 0
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transform); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("instantiate %q: override transform: %w", t.Path, err)
	}
	return e, nil
}
