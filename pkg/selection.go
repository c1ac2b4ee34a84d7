package pkg

import "github.com/qnkhuat/chessboard/pkg/board"

// Selection is either nothing held or a held square. The zero value holds
// nothing.
type Selection struct {
	holding bool
	square  board.Coord
}

func holding(c board.Coord) Selection {
	return Selection{holding: true, square: c}
}

// Held returns the held square, if any.
func (s Selection) Held() (board.Coord, bool) {
	return s.square, s.holding
}

func (s Selection) String() string {
	if !s.holding {
		return "nothing held"
	}
	return "holding " + s.square.String()
}
