// Package engine implements the falling-block simulation: the piece catalog,
// the playfield grid, collision checks, rotation with wall kicks, line
// clearing and score/level progression.
//
// The engine has no I/O and no scheduler. Callers drive it with intents
// (Move, Rotate, SoftDrop, HardDrop, ...) and with Tick(elapsedMs) from
// whatever frame clock they own, then read Snapshot for rendering.
package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Type identifies one of the seven pieces.
// The zero value TypeNone marks an empty grid cell.
type Type uint8

const (
	TypeNone Type = iota
	TypeI
	TypeO
	TypeT
	TypeS
	TypeZ
	TypeJ
	TypeL
)

// Types lists the playable piece types in catalog order.
var Types = [...]Type{TypeI, TypeO, TypeT, TypeS, TypeZ, TypeJ, TypeL}

// Rand is the random source used to pick pieces.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type catalogEntry struct {
	shape Shape
	color core.Color
}

// catalog holds the spawn orientation of every piece. Never handed out directly.
var catalog = map[Type]catalogEntry{
	TypeI: {
		shape: Shape{
			{false, false, false, false},
			{true, true, true, true},
			{false, false, false, false},
			{false, false, false, false},
		},
		color: core.ColorCyan,
	},
	TypeO: {
		shape: Shape{
			{true, true},
			{true, true},
		},
		color: core.ColorYellow,
	},
	TypeT: {
		shape: Shape{
			{false, true, false},
			{true, true, true},
			{false, false, false},
		},
		color: core.ColorMagenta,
	},
	TypeS: {
		shape: Shape{
			{false, true, true},
			{true, true, false},
			{false, false, false},
		},
		color: core.ColorGreen,
	},
	TypeZ: {
		shape: Shape{
			{true, true, false},
			{false, true, true},
			{false, false, false},
		},
		color: core.ColorRed,
	},
	TypeJ: {
		shape: Shape{
			{true, false, false},
			{true, true, true},
			{false, false, false},
		},
		color: core.ColorBlue,
	},
	TypeL: {
		shape: Shape{
			{false, false, true},
			{true, true, true},
			{false, false, false},
		},
		color: core.ColorOrange,
	},
}

// ShapeOf returns a copy of the spawn shape for t, or nil for TypeNone.
func ShapeOf(t Type) Shape {
	entry, ok := catalog[t]
	if !ok {
		return nil
	}
	return entry.shape.Clone()
}

// ColorOf returns the display color for t.
func ColorOf(t Type) core.Color {
	entry, ok := catalog[t]
	if !ok {
		return core.ColorDefault
	}
	return entry.color
}

// RandomType picks one of the seven types uniformly.
func RandomType(r Rand) Type {
	return Types[r.Intn(len(Types))]
}

// String returns the single-letter name of the type.
func (t Type) String() string {
	switch t {
	case TypeI:
		return "I"
	case TypeO:
		return "O"
	case TypeT:
		return "T"
	case TypeS:
		return "S"
	case TypeZ:
		return "Z"
	case TypeJ:
		return "J"
	case TypeL:
		return "L"
	default:
		return "."
	}
}
