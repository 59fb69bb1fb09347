package types

import "fmt"

// Coord is the top-left placement of one tile instance.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Box is an axis-aligned rectangle with a top-left origin.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

func NewBox(x, y, width, height int) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// Offset returns the box translated by dx, dy.
func (b Box) Offset(dx, dy int) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, Width: b.Width, Height: b.Height}
}

// Inflate returns the box grown by n on every side.
func (b Box) Inflate(n int) Box {
	return Box{X: b.X - n, Y: b.Y - n, Width: b.Width + 2*n, Height: b.Height + 2*n}
}

// MaxX is the right edge of the box.
func (b Box) MaxX() int {
	return b.X + b.Width
}

// MaxY is the bottom edge of the box.
func (b Box) MaxY() int {
	return b.Y + b.Height
}

// Intersects reports whether the boxes overlap. Edges are inclusive,
// so boxes that only touch still intersect.
func (b Box) Intersects(other Box) bool {
	return b.X <= other.MaxX() && b.MaxX() >= other.X &&
		b.Y <= other.MaxY() && b.MaxY() >= other.Y
}

func (b Box) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", b.X, b.Y, b.Width, b.Height)
}

type Direction uint8

const (
	DirectionIdle Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionIdle:
		return "idle"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the displacement of a single step in this direction.
// Up and Left decrease the coordinate, Down and Right increase it.
func (d Direction) Delta(step int) (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -step
	case DirectionDown:
		return 0, step
	case DirectionLeft:
		return -step, 0
	case DirectionRight:
		return step, 0
	default:
		return 0, 0
	}
}
