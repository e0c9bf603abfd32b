package obj

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/spawner/common"
	"github.com/milk9111/spawner/prefabs"
)

const enemyMass = 1.0

var defaultEnemyColor = color.RGBA{R: 60, G: 120, B: 200, A: 255}

// EnemyPrefab is the object-side prototype each Enemy is cloned from.
type EnemyPrefab struct {
	prefabs.EnemyStats
}

// LoadEnemyPrefab reads the same prefab file the entity backend converts and
// keeps the fields a plain object needs.
func LoadEnemyPrefab(path string) (*EnemyPrefab, error) {
	stats, err := prefabs.LoadEnemyStats(path)
	if err != nil {
		return nil, fmt.Errorf("enemy prefab: %w", err)
	}
	if stats.Color == nil {
		stats.Color = defaultEnemyColor
	}
	return &EnemyPrefab{EnemyStats: stats}, nil
}

// Enemy is a standalone game object backed by a chipmunk body.
type Enemy struct {
	ID     uuid.UUID
	Prefab *EnemyPrefab
	Health int

	body  *cp.Body
	shape *cp.Shape
}

// NewEnemy clones prefab at (x, y) with angle 0 and adds its body to space.
func NewEnemy(prefab *EnemyPrefab, x, y float64, space *cp.Space) *Enemy {
	moment := cp.MomentForCircle(enemyMass, 0, prefab.Radius, cp.Vector{})
	body := cp.NewBody(enemyMass, moment)
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(0)

	shape := cp.NewCircle(body, prefab.Radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)

	if space != nil {
		space.AddBody(body)
		space.AddShape(shape)
	}

	return &Enemy{
		ID:     uuid.New(),
		Prefab: prefab,
		Health: prefab.Health,
		body:   body,
		shape:  shape,
	}
}

func (e *Enemy) Position() (float64, float64) {
	p := e.body.Position()
	return p.X, p.Y
}

func (e *Enemy) Angle() float64 {
	return e.body.Angle()
}

// Steer points the body's velocity at (tx, ty).
func (e *Enemy) Steer(tx, ty float64) {
	x, y := e.Position()
	vx, vy := common.Steer(x, y, tx, ty, e.Prefab.Speed, e.Prefab.StopDistance)
	e.body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
}

