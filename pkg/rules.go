package pkg

import (
	"errors"

	"github.com/qnkhuat/chessboard/pkg/board"
)

var (
	ErrSameSquare  = errors.New("origin and destination are the same square")
	ErrEmptyOrigin = errors.New("origin square is empty")
	ErrOwnPiece    = errors.New("destination holds a piece of the same colour")
	ErrOffBoard    = errors.New("square is off the board")
	ErrNothingHeld = errors.New("no piece is held")
)

// Rules decides whether a piece may be relocated from one square to another.
// A nil error means the move is legal and the returned Position is the
// committed result. On error the input Position is returned unchanged.
type Rules interface {
	Apply(pos board.Position, from, to board.Coord) (board.Position, error)
}

// MinimalRules accepts any relocation onto an empty square or onto a piece
// of the other colour. It does not know how pieces move.
type MinimalRules struct{}

func (MinimalRules) Apply(pos board.Position, from, to board.Coord) (board.Position, error) {
	if !from.Valid() || !to.Valid() {
		return pos, ErrOffBoard
	}
	if from == to {
		return pos, ErrSameSquare
	}
	moving, ok := pos.At(from).Piece()
	if !ok {
		return pos, ErrEmptyOrigin
	}
	// Only the other side's pieces can be captured.
	if target, ok := pos.At(to).Piece(); ok && target.Color != moving.Color.Opposite() {
		return pos, ErrOwnPiece
	}

	next := pos
	moving.Moves++
	next.Set(to, board.Occupied(moving))
	next.Set(from, board.Empty)
	return next, nil
}
