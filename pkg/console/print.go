// Package console is a line-oriented front end for a session, used when no
// mouse-capable terminal is available and for scripting moves.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/qnkhuat/chessboard/pkg/board"
)

var (
	whiteStyle = color.New(color.FgHiBlue, color.Bold)
	blackStyle = color.New(color.FgRed, color.Bold)
	labelStyle = color.New(color.FgCyan)
	emptyStyle = color.New(color.Faint)
	errStyle   = color.New(color.FgRed)
	infoStyle  = color.New(color.FgYellow)
)

func pieceText(sq board.Square) string {
	p, ok := sq.Piece()
	if !ok {
		return emptyStyle.Sprint(".")
	}
	if p.Color == board.White {
		return whiteStyle.Sprint(string(p.Letter()))
	}
	return blackStyle.Sprint(string(p.Letter()))
}

// PrintBoard writes pos as text, rank 8 first unless flip is set.
// Colors are dropped when color.NoColor is true.
func PrintBoard(w io.Writer, pos board.Position, flip bool) {
	for i := 0; i < board.Size; i++ {
		rank := board.Size - 1 - i
		if flip {
			rank = i
		}
		fmt.Fprint(w, labelStyle.Sprint(rank+1))
		for j := 0; j < board.Size; j++ {
			file := j
			if flip {
				file = board.Size - 1 - j
			}
			fmt.Fprint(w, " ", pieceText(pos.At(board.Coord{File: file, Rank: rank})))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, " ")
	for j := 0; j < board.Size; j++ {
		file := j
		if flip {
			file = board.Size - 1 - j
		}
		fmt.Fprint(w, " ", labelStyle.Sprint(string(rune('a'+file))))
	}
	fmt.Fprintln(w)
}
