package engine

import "testing"

// fillRow occupies row y except for the listed columns.
func fillRow(g Grid, y int, holes ...int) {
	for x := range g[y] {
		g[y][x] = TypeJ
	}
	for _, x := range holes {
		g[y][x] = TypeNone
	}
}

func TestGridCollides(t *testing.T) {
	g := NewGrid(10, 20)
	g[19][4] = TypeT
	g[0][0] = TypeL

	o := func(x, y int) Piece { return NewPiece(TypeO, x, y) }

	tests := []struct {
		name     string
		piece    Piece
		expected bool
	}{
		{"free space", o(4, 5), false},
		{"left wall", o(-1, 5), true},
		{"right wall", o(9, 5), true},
		{"touching right wall", o(8, 5), false},
		{"floor", o(4, 19), true},
		{"resting on floor", o(5, 18), false},
		{"locked cell", o(3, 18), true},
		{"above grid is free", o(4, -2), false},
		{"above grid still checks columns", o(-1, -2), true},
		{"partially above grid over locked cell", o(0, -1), true},
		{"partially above grid", o(1, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Collides(tc.piece); got != tc.expected {
				t.Errorf("Collides(%+v) = %v, expected %v", tc.piece, got, tc.expected)
			}
		})
	}
}

func TestGridCollidesMatchesCellPredicate(t *testing.T) {
	g := NewGrid(6, 8)
	g[7][0] = TypeS
	g[5][3] = TypeZ
	g[2][5] = TypeI

	for _, typ := range Types {
		for y := -4; y <= 9; y++ {
			for x := -4; x <= 7; x++ {
				p := NewPiece(typ, x, y)
				expected := false
				for _, c := range p.Cells() {
					if c.X < 0 || c.X >= 6 || c.Y >= 8 || (c.Y >= 0 && g[c.Y][c.X] != TypeNone) {
						expected = true
					}
				}
				if got := g.Collides(p); got != expected {
					t.Fatalf("Collides(%s at %d,%d) = %v, expected %v", typ, x, y, got, expected)
				}
			}
		}
	}
}

func TestGridLockSkipsHiddenRows(t *testing.T) {
	g := NewGrid(10, 20)
	g.Lock(NewPiece(TypeO, 4, -1))

	count := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] != TypeNone {
				count++
				if y != 0 {
					t.Errorf("unexpected locked cell at (%d, %d)", x, y)
				}
			}
		}
	}
	if count != 2 {
		t.Errorf("locked %d cells, expected 2 (the visible half of the O)", count)
	}
	if g[0][4] != TypeO || g[0][5] != TypeO {
		t.Errorf("row 0 = %v, expected O at columns 4 and 5", g[0])
	}
}

func TestClearFullRowsSingle(t *testing.T) {
	g := NewGrid(4, 5)
	fillRow(g, 4)
	g[3][1] = TypeT

	if n := g.ClearFullRows(); n != 1 {
		t.Fatalf("ClearFullRows() = %d, expected 1", n)
	}
	if g[4][1] != TypeT {
		t.Errorf("row above should shift down, got\n%s", g)
	}
	for x := range 4 {
		if g[0][x] != TypeNone {
			t.Errorf("new top row should be empty, got\n%s", g)
		}
	}
}

func TestClearFullRowsNonContiguous(t *testing.T) {
	g := NewGrid(4, 6)
	fillRow(g, 5)
	fillRow(g, 4, 2)
	fillRow(g, 3)
	g[2][0] = TypeI

	if n := g.ClearFullRows(); n != 2 {
		t.Fatalf("ClearFullRows() = %d, expected 2", n)
	}

	expected := "....\n" +
		"....\n" +
		"....\n" +
		"....\n" +
		"I...\n" +
		"JJ.J"
	if g.String() != expected {
		t.Errorf("grid after clear =\n%s\nexpected\n%s", g, expected)
	}
}

func TestClearFullRowsStack(t *testing.T) {
	g := NewGrid(4, 6)
	for y := 2; y < 6; y++ {
		fillRow(g, y)
	}

	if n := g.ClearFullRows(); n != 4 {
		t.Fatalf("ClearFullRows() = %d, expected 4", n)
	}
	if g.String() != "....\n....\n....\n....\n....\n...." {
		t.Errorf("grid should be empty after clearing, got\n%s", g)
	}
}

func TestClearFullRowsIdempotent(t *testing.T) {
	g := NewGrid(5, 6)
	fillRow(g, 5)
	fillRow(g, 4, 0)
	g[3][2] = TypeO

	first := g.ClearFullRows()
	before := g.String()
	second := g.ClearFullRows()

	if first != 1 {
		t.Errorf("first ClearFullRows() = %d, expected 1", first)
	}
	if second != 0 {
		t.Errorf("second ClearFullRows() = %d, expected 0", second)
	}
	if g.String() != before {
		t.Errorf("second clear changed the grid:\n%s\nvs\n%s", before, g)
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	c := g.Clone()
	c[0][0] = TypeZ

	if g[0][0] != TypeNone {
		t.Error("Clone() must not share rows with the original")
	}
}

func TestNewGridPanicsOnBadDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 20) should panic")
		}
	}()
	NewGrid(0, 20)
}
