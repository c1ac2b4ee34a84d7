package board

import "math"

// Point is a pointer location in board units.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Rect is an axis-aligned rectangle in board units.
type Rect struct {
	Min, Max Point
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Geometry describes where the board is drawn. Renderers and the hit test
// share one Geometry so the two can never disagree.
type Geometry struct {
	// Origin is the top-left corner of the board.
	Origin Point `json:"origin" yaml:"origin"`
	// SquareSize is the edge length of one square.
	SquareSize float64 `json:"squareSize" yaml:"squareSize" validate:"gt=0"`
	// Deadzone is the fraction of a square, measured in from each edge,
	// that hits no square. Pick-up and drop use the same band.
	Deadzone float64 `json:"deadzone" yaml:"deadzone" validate:"gte=0,lt=0.5"`
	// Flip draws the board from Black's side.
	Flip bool `json:"flip" yaml:"flip"`
}

// DefaultGeometry is a board at (2, 1) with squares two units wide and a
// deadzone of a tenth of a square.
func DefaultGeometry() Geometry {
	return Geometry{
		Origin:     Point{X: 2, Y: 1},
		SquareSize: 2,
		Deadzone:   0.1,
	}
}

// Bounds returns the rectangle covered by the 64 squares.
func (g Geometry) Bounds() Rect {
	edge := g.SquareSize * Size
	return Rect{
		Min: g.Origin,
		Max: Point{X: g.Origin.X + edge, Y: g.Origin.Y + edge},
	}
}

// cell converts a coordinate into the screen column and row of its square.
// Column 0 is leftmost and row 0 is topmost.
func (g Geometry) cell(c Coord) (col, row int) {
	if g.Flip {
		return Size - 1 - c.File, c.Rank
	}
	return c.File, Size - 1 - c.Rank
}

func (g Geometry) coord(col, row int) Coord {
	if g.Flip {
		return Coord{File: Size - 1 - col, Rank: row}
	}
	return Coord{File: col, Rank: Size - 1 - row}
}

// SquareOrigin returns the top-left corner of c's square.
func (g Geometry) SquareOrigin(c Coord) Point {
	col, row := g.cell(c)
	return Point{
		X: g.Origin.X + float64(col)*g.SquareSize,
		Y: g.Origin.Y + float64(row)*g.SquareSize,
	}
}

// Center returns the centre of c's square.
func (g Geometry) Center(c Coord) Point {
	o := g.SquareOrigin(c)
	half := g.SquareSize / 2
	return Point{X: o.X + half, Y: o.Y + half}
}

// Locate maps p to the square under it. It reports false when p is outside
// the board or inside the deadzone band of the square it falls in.
func (g Geometry) Locate(p Point) (Coord, bool) {
	if g.SquareSize <= 0 || !g.Bounds().Contains(p) {
		return Coord{}, false
	}
	col, fx := split((p.X - g.Origin.X) / g.SquareSize)
	row, fy := split((p.Y - g.Origin.Y) / g.SquareSize)
	if col >= Size || row >= Size {
		return Coord{}, false
	}
	if g.inDeadzone(fx) || g.inDeadzone(fy) {
		return Coord{}, false
	}
	return g.coord(col, row), true
}

func split(v float64) (int, float64) {
	i := math.Floor(v)
	return int(i), v - i
}

func (g Geometry) inDeadzone(f float64) bool {
	return f < g.Deadzone || f > 1-g.Deadzone
}
