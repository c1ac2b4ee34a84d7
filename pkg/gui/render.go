package gui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessboard/pkg/board"
)

// One geometry unit is one terminal row and two terminal columns, which
// keeps squares roughly square on screen.
const columnsPerUnit = 2

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// stylePiece applies the theme's style to a piece based upon its color
func stylePiece(p board.Piece, sqBg tcell.Color, t Theme) tcell.Style {
	pieceStyle := tcell.StyleDefault.Background(sqBg)
	if p.Color == board.White {
		return pieceStyle.Foreground(t.White)
	}
	return pieceStyle.Foreground(t.Black)
}

// squareBg returns the theme's color corresponding to the square
func squareBg(c board.Coord, t Theme) tcell.Color {
	// a1 is a dark square
	if (c.File+c.Rank)%2 == 0 {
		return t.SquareDark
	}
	return t.SquareLight
}

// cellRect is a block of terminal cells
type cellRect struct {
	x, y, w, h int
}

// glyphCell is where a piece is drawn inside its square
func (r cellRect) glyphCell() (int, int) {
	return r.x + (r.w-1)/2, r.y + r.h/2
}

func round(v float64) int {
	return int(math.Round(v))
}

// unitsToCell converts a point in geometry units to the terminal cell whose
// top-left corner it is, relative to (x, y).
func unitsToCell(x, y int, p board.Point) (int, int) {
	return x + round(p.X*columnsPerUnit), y + round(p.Y)
}

// cellToUnits returns the centre of a terminal cell in geometry units.
func cellToUnits(x, y, col, row int) board.Point {
	return board.Point{
		X: (float64(col-x) + 0.5) / columnsPerUnit,
		Y: float64(row-y) + 0.5,
	}
}

// squareCells returns the cells covered by c when the board is drawn at (x, y)
func squareCells(g board.Geometry, x, y int, c board.Coord) cellRect {
	col, row := unitsToCell(x, y, g.SquareOrigin(c))
	return cellRect{
		x: col,
		y: row,
		w: round(g.SquareSize * columnsPerUnit),
		h: round(g.SquareSize),
	}
}

// drawSquare draws a board square and its corresponding piece
func drawSquare(s tcell.Screen, r cellRect, sq board.Square, sqBg tcell.Color, t Theme) {
	bg := tcell.StyleDefault.Background(sqBg)
	for row := r.y; row < r.y+r.h; row++ {
		for col := r.x; col < r.x+r.w; col++ {
			s.SetContent(col, row, ' ', nil, bg)
		}
	}
	if p, ok := sq.Piece(); ok {
		col, row := r.glyphCell()
		drawRune(s, col, row, stylePiece(p, sqBg, t), p.Glyph())
	}
}

// drawFloating draws a piece over whatever is already on screen at (col, row)
func drawFloating(s tcell.Screen, col, row int, p board.Piece, t Theme) {
	_, _, style, _ := s.GetContent(col, row)
	_, bg, _ := style.Decompose()
	drawRune(s, col, row, stylePiece(p, bg, t), p.Glyph())
}

// drawRanks draws the rank indicators left of the board
func drawRanks(s tcell.Screen, g board.Geometry, x, y int, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Rank)
	for rank := 0; rank < board.Size; rank++ {
		r := squareCells(g, x, y, board.Coord{File: 0, Rank: rank})
		if g.Flip {
			r = squareCells(g, x, y, board.Coord{File: board.Size - 1, Rank: rank})
		}
		_, row := r.glyphCell()
		drawRune(s, r.x-2, row, style, rune('1'+rank))
	}
}

// drawFiles draws the file indicators below the board
func drawFiles(s tcell.Screen, g board.Geometry, x, y int, t Theme) {
	style := tcell.StyleDefault.Foreground(t.File)
	_, bottom := unitsToCell(x, y, g.Bounds().Max)
	for file := 0; file < board.Size; file++ {
		r := squareCells(g, x, y, board.Coord{File: file, Rank: 0})
		col, _ := r.glyphCell()
		drawRune(s, col, bottom, style, rune('a'+file))
	}
}
