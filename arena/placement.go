package arena

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Placement produces an offset from the player for one spawn. Offsets longer
// than radius are clamped by the arena.
type Placement interface {
	Offset(rng *rand.Rand, radius float64) (float64, float64)
}

// Disk samples uniformly over the disk of the given radius.
type Disk struct{}

func (Disk) Offset(rng *rand.Rand, radius float64) (float64, float64) {
	r := radius * math.Sqrt(rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	return r * math.Cos(theta), r * math.Sin(theta)
}

// Ring samples on the circle edge, so enemies appear at exactly radius.
type Ring struct{}

func (Ring) Offset(rng *rand.Rand, radius float64) (float64, float64) {
	theta := 2 * math.Pi * rng.Float64()
	return radius * math.Cos(theta), radius * math.Sin(theta)
}

// NewPlacement resolves a placement name from the spawner spec. Script
// placements need a script path.
func NewPlacement(name, script string) (Placement, error) {
	switch name {
	case "", "disk":
		return Disk{}, nil
	case "ring":
		return Ring{}, nil
	case "script":
		if script == "" {
			return nil, fmt.Errorf("arena: script placement needs placement_script")
		}
		return LoadScript(script)
	default:
		return nil, fmt.Errorf("arena: unknown placement %q", name)
	}
}

func clampToRadius(dx, dy, radius float64) (float64, float64) {
	if math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return 0, 0
	}
	d := math.Hypot(dx, dy)
	if d <= radius {
		return dx, dy
	}
	scale := radius / d
	dx, dy = dx*scale, dy*scale
	// Scaling can land a few ULPs outside; step toward zero until inside.
	for math.Hypot(dx, dy) > radius {
		dx = math.Nextafter(dx, 0)
		dy = math.Nextafter(dy, 0)
	}
	return dx, dy
}
