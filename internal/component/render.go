// internal/component/render.go
package component

import "image/color"

type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Renderable is what the visual tick needs to draw an actor.
type Renderable struct {
	Shape Shape
	Size  float64
	Color color.RGBA
}
