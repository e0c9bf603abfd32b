package component

// Chase steers an entity toward the current chase target at Speed units per
// second. StopDistance keeps chasers from stacking on the target.
type Chase struct {
	Speed        float64
	StopDistance float64
}

var ChaseComponent = NewComponent[Chase]()
