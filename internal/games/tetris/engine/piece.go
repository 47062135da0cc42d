package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Shape is a square occupancy matrix indexed [row][col].
// A shape is never modified after construction; Rotate returns a new one.
type Shape [][]bool

// Size returns the side length of the shape.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Rotate returns the shape turned 90 degrees clockwise:
// out[i][j] = s[n-1-j][i]. Panics if the shape is not square.
func (s Shape) Rotate() Shape {
	n := len(s)
	for _, row := range s {
		if len(row) != n {
			panic("engine: cannot rotate non-square shape")
		}
	}

	out := make(Shape, n)
	for i := range n {
		out[i] = make([]bool, n)
		for j := range n {
			out[i][j] = s[n-1-j][i]
		}
	}
	return out
}

// Equal reports whether two shapes have identical occupancy.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Point is an absolute grid coordinate.
type Point struct {
	X, Y int
}

// Piece is a placed shape. X and Y are the anchor column and row of the
// shape's top-left corner; Y may be negative while spawning.
type Piece struct {
	Type  Type
	Shape Shape
	X     int
	Y     int
}

// NewPiece creates a piece of type t with its spawn shape at (x, y).
func NewPiece(t Type, x, y int) Piece {
	return Piece{
		Type:  t,
		Shape: ShapeOf(t),
		X:     x,
		Y:     y,
	}
}

// Color returns the display color of the piece.
func (p Piece) Color() core.Color {
	return ColorOf(p.Type)
}

// Shifted returns a copy of the piece moved by (dx, dy).
func (p Piece) Shifted(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece with its shape turned clockwise.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Cells returns the absolute coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				cells = append(cells, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}

// Clone returns a copy that shares no memory with p.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
