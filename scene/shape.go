// Package scene holds the components, singletons and systems of the demo:
// the shape selection state machine, the per-frame spin, shader time and
// camera mutators, and the setup that spawns the initial world.
//
// Nothing here touches the window or GPU. Input arrives through KeyState and
// rendering reads the components back out of the ecs.Storage.
package scene

import (
	"fmt"
	"strings"
)

// Shape names one of the primitives the demo can display.
type Shape uint8

const (
	Cube Shape = iota
	Pyramid
	Sphere
	Torus
)

var shapeNames = [...]string{
	Cube:    "Cube",
	Pyramid: "Pyramid",
	Sphere:  "Sphere",
	Torus:   "Torus",
}

// Shapes returns every shape in dropdown order.
func Shapes() []Shape {
	return []Shape{Cube, Pyramid, Sphere, Torus}
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Valid reports whether s is a member of the closed shape set.
func (s Shape) Valid() bool {
	return int(s) < len(shapeNames)
}

// ParseShape looks a shape up by name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}
