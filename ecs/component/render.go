package component

import "image/color"

// Render draws the entity as a filled circle centred on its transform.
type Render struct {
	Radius float64
	Color  color.Color
	Layer  int
}

var RenderComponent = NewComponent[Render]()
