package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Steer returns a velocity of magnitude speed from (x, y) toward (tx, ty), or
// zero once within stop distance.
func Steer(x, y, tx, ty, speed, stop float64) (float64, float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist <= stop || dist == 0 {
		return 0, 0
	}
	return dx / dist * speed, dy / dist * speed
}
