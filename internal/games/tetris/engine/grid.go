package engine

// Cell is a grid cell: TypeNone when empty, otherwise the type of the
// piece that was locked there.
type Cell = Type

// Grid is the playfield, indexed [row][col] with row 0 at the top.
// Its dimensions never change after NewGrid.
type Grid [][]Cell

// NewGrid allocates an empty grid. Panics on non-positive dimensions.
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic("engine: grid dimensions must be positive")
	}
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// InBounds reports whether (x, y) lies inside the visible grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// At returns the cell at (x, y), or TypeNone outside the grid.
func (g Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return TypeNone
	}
	return g[y][x]
}

// Clear empties every cell.
func (g Grid) Clear() {
	for y := range g {
		for x := range g[y] {
			g[y][x] = TypeNone
		}
	}
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Collides reports whether p cannot be placed on the grid: some occupied
// cell is outside [0, width), at or below the floor, or on a locked cell.
// Cells above row 0 only get the column check.
func (g Grid) Collides(p Piece) bool {
	width, height := g.Width(), g.Height()
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if !filled {
				continue
			}
			x := p.X + dx
			y := p.Y + dy
			if x < 0 || x >= width || y >= height {
				return true
			}
			if y >= 0 && g[y][x] != TypeNone {
				return true
			}
		}
	}
	return false
}

// Lock writes the occupied cells of p into the grid. Cells above row 0
// are dropped.
func (g Grid) Lock(p Piece) {
	for _, c := range p.Cells() {
		if c.Y < 0 || !g.InBounds(c.X, c.Y) {
			continue
		}
		g[c.Y][c.X] = p.Type
	}
}

// RowFull reports whether every cell of row y is occupied.
func (g Grid) RowFull(y int) bool {
	for _, c := range g[y] {
		if c == TypeNone {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down
// and inserting empty rows at the top. Returns the number removed.
func (g Grid) ClearFullRows() int {
	cleared := 0
	for y := g.Height() - 1; y >= 0; y-- {
		if !g.RowFull(y) {
			continue
		}

		// Shift rows [0, y) down by one, reusing the removed row as the new top.
		removed := g[y]
		copy(g[1:y+1], g[0:y])
		for x := range removed {
			removed[x] = TypeNone
		}
		g[0] = removed

		cleared++
		y++ // the row above now sits at y
	}
	return cleared
}

// String renders the grid as rows of type letters, '.' for empty.
func (g Grid) String() string {
	buf := make([]byte, 0, (g.Width()+1)*g.Height())
	for y, row := range g {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, c := range row {
			buf = append(buf, c.String()...)
		}
	}
	return string(buf)
}
