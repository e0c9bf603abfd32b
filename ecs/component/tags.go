package component

// EnemyTag marks entities created by the spawner.
type EnemyTag struct {
	Name string
}

var EnemyTagComponent = NewComponent[EnemyTag]()
