package board

import (
	"fmt"

	"github.com/notnil/chess"
)

const (
	// Size is the number of files and ranks.
	Size = 8
	// NumSquares is the number of addressable squares.
	NumSquares = Size * Size
)

// Coord addresses a square. Rank 0 is White's back rank.
type Coord struct {
	File int
	Rank int
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.File >= 0 && c.File < Size && c.Rank >= 0 && c.Rank < Size
}

func (c Coord) chess() chess.Square {
	return chess.Square(c.Rank*Size + c.File)
}

// String returns the algebraic name of the square, e.g. "e2".
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return c.chess().String()
}

var coordsByName = func() map[string]Coord {
	m := make(map[string]Coord, NumSquares)
	for rank := 0; rank < Size; rank++ {
		for file := 0; file < Size; file++ {
			c := Coord{File: file, Rank: rank}
			m[c.String()] = c
		}
	}
	return m
}()

// ParseCoord parses an algebraic square name such as "e2".
func ParseCoord(name string) (Coord, error) {
	c, ok := coordsByName[name]
	if !ok {
		return Coord{}, fmt.Errorf("board: invalid square %q", name)
	}
	return c, nil
}

// Position is an 8x8 grid of squares indexed [file][rank]. It is a plain
// value: assigning a Position copies the whole board.
type Position [Size][Size]Square

// At returns the content of c. Squares off the board read as empty.
func (p Position) At(c Coord) Square {
	if !c.Valid() {
		return Empty
	}
	return p[c.File][c.Rank]
}

// Set writes sq at c. Writes off the board are dropped.
func (p *Position) Set(c Coord, sq Square) {
	if !c.Valid() {
		return
	}
	p[c.File][c.Rank] = sq
}

// Pieces returns the number of occupied squares.
func (p Position) Pieces() int {
	n := 0
	for file := 0; file < Size; file++ {
		for rank := 0; rank < Size; rank++ {
			if !p[file][rank].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Count returns the number of pieces of the given colour.
func (p Position) Count(color Color) int {
	n := 0
	for file := 0; file < Size; file++ {
		for rank := 0; rank < Size; rank++ {
			if piece, ok := p[file][rank].Piece(); ok && piece.Color == color {
				n++
			}
		}
	}
	return n
}

// Placement encodes the position in placement notation. Move counts are
// not part of the notation.
func (p Position) Placement() string {
	m := make(map[chess.Square]chess.Piece)
	for file := 0; file < Size; file++ {
		for rank := 0; rank < Size; rank++ {
			if piece, ok := p[file][rank].Piece(); ok {
				m[Coord{File: file, Rank: rank}.chess()] = piece.chess()
			}
		}
	}
	return chess.NewBoard(m).String()
}
