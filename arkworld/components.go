package arkworld

import "image/color"

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

// Enemy carries the per-instance copy of the converted prefab.
type Enemy struct {
	Name         string
	Health       int
	Radius       float64
	Speed        float64
	StopDistance float64
	Color        color.Color
}
