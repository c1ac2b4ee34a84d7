// Package board holds the chessboard data model: pieces, positions,
// placement notation and the mapping from pointer coordinates to squares.
package board

import (
	"fmt"
	"unicode"

	"github.com/notnil/chess"
)

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase placement letter of the kind.
func (k Kind) Letter() rune {
	letters := []rune{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece plus the number of committed moves it has made.
type Piece struct {
	Color Color
	Kind  Kind
	Moves int
}

// Letter returns the placement letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() rune {
	if p.Color == Black {
		return unicode.ToLower(p.Kind.Letter())
	}
	return p.Kind.Letter()
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color, p.Kind)
}

// Glyph returns the unicode chess symbol of the piece.
func (p Piece) Glyph() rune {
	for _, r := range p.chess().String() {
		return r
	}
	return p.Letter()
}

var chessPieces = map[Color]map[Kind]chess.Piece{
	White: {
		Pawn:   chess.WhitePawn,
		Knight: chess.WhiteKnight,
		Bishop: chess.WhiteBishop,
		Rook:   chess.WhiteRook,
		Queen:  chess.WhiteQueen,
		King:   chess.WhiteKing,
	},
	Black: {
		Pawn:   chess.BlackPawn,
		Knight: chess.BlackKnight,
		Bishop: chess.BlackBishop,
		Rook:   chess.BlackRook,
		Queen:  chess.BlackQueen,
		King:   chess.BlackKing,
	},
}

func (p Piece) chess() chess.Piece {
	return chessPieces[p.Color][p.Kind]
}

// PieceFromLetter decodes a placement letter. Unknown letters report false.
func PieceFromLetter(r rune) (Piece, bool) {
	color := White
	if unicode.IsLower(r) {
		color = Black
	}
	switch unicode.ToUpper(r) {
	case 'K':
		return Piece{Color: color, Kind: King}, true
	case 'Q':
		return Piece{Color: color, Kind: Queen}, true
	case 'R':
		return Piece{Color: color, Kind: Rook}, true
	case 'B':
		return Piece{Color: color, Kind: Bishop}, true
	case 'N':
		return Piece{Color: color, Kind: Knight}, true
	case 'P':
		return Piece{Color: color, Kind: Pawn}, true
	}
	return Piece{}, false
}

// Square is the content of one board cell. The zero value is an empty square.
type Square struct {
	occupied bool
	piece    Piece
}

// Empty is the content of an unoccupied square.
var Empty = Square{}

// Occupied returns a square holding p.
func Occupied(p Piece) Square {
	return Square{occupied: true, piece: p}
}

func (s Square) IsEmpty() bool {
	return !s.occupied
}

// Piece returns the occupying piece, if any.
func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

func (s Square) String() string {
	if !s.occupied {
		return "Empty"
	}
	return s.piece.String()
}
