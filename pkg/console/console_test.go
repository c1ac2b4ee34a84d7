package console

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/qnkhuat/chessboard/pkg"
	"github.com/qnkhuat/chessboard/pkg/board"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// lines feeds a fixed script to the console.
type lines []string

func (l *lines) Readline() (string, error) {
	if len(*l) == 0 {
		return "", io.EOF
	}
	line := (*l)[0]
	*l = (*l)[1:]
	return line, nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestPrintBoard(t *testing.T) {
	var buf bytes.Buffer
	PrintBoard(&buf, board.ParsePlacement(board.StartingPlacement), false)
	want := strings.Join([]string{
		"8 r n b q k b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("wanted\n%s\ngot\n%s", want, buf.String())
	}
}

func TestPrintBoardFlipped(t *testing.T) {
	var buf bytes.Buffer
	PrintBoard(&buf, board.ParsePlacement("4k3/8/8/8/8/8/8/R3K3"), true)
	got := strings.Split(buf.String(), "\n")
	if got[0] != "1 . . . K . . . R" {
		t.Errorf("first row: got %q", got[0])
	}
	if got[7] != "8 . . . k . . . ." {
		t.Errorf("last row: got %q", got[7])
	}
	if got[8] != "  h g f e d c b a" {
		t.Errorf("file labels: got %q", got[8])
	}
}

func TestRunScript(t *testing.T) {
	s := pkg.NewSession(board.StartingPlacement, pkg.WithName("console"))
	e2 := s.Geometry().Center(board.Coord{File: 4, Rank: 1})

	script := lines{
		"",
		"press " + ftoa(e2.X) + " " + ftoa(e2.Y),
		"show",
		"release 11 10",
		"drag g8 f6",
		"drag a1 a2",
		"history",
		"fen",
		"bogus",
		"quit",
		"drag b1 c3",
	}
	var out bytes.Buffer
	if err := Run(&script, &out, s); err != nil {
		t.Fatal(err)
	}

	if len(script) != 1 {
		t.Errorf("quit should stop reading, %d lines left", len(script))
	}
	moves := s.History()
	if len(moves) != 2 || moves[0].String() != "P e2-e4" || moves[1].String() != "n g8-f6" {
		t.Errorf("unexpected history %v", moves)
	}
	text := out.String()
	for _, want := range []string{
		"holding e2",
		"  1. P e2-e4",
		"  2. n g8-f6",
		"rnbqkb1r/pppppppp/5n2/8/4P3/8/PPPP1PPP/RNBQKBNR",
		"same colour",
		"unknown command: bogus",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output is missing %q:\n%s", want, text)
		}
	}
}

func TestExecuteErrors(t *testing.T) {
	s := pkg.NewSession(board.StartingPlacement, pkg.WithName("console"))
	c := New(s, io.Discard)

	cases := []struct {
		line string
		want error
	}{
		{"press 1", ErrUsage},
		{"press x 1", ErrUsage},
		{"drag e2", ErrUsage},
		{"release 11 14", pkg.ErrNothingHeld},
		{"jump", ErrUnknown},
	}
	for _, tc := range cases {
		if err := c.Execute(tc.line); !errors.Is(err, tc.want) {
			t.Errorf("%q: wanted %v got %v", tc.line, tc.want, err)
		}
	}

	if err := c.Execute("drag e9 e4"); err == nil {
		t.Error("wanted an error for a bad square name")
	}
	if err := c.Execute("drag e4 e5"); err == nil {
		t.Error("wanted an error picking up from an empty square")
	}
}

func TestUndoReset(t *testing.T) {
	s := pkg.NewSession(board.StartingPlacement, pkg.WithName("console"))
	var out bytes.Buffer
	c := New(s, &out)

	for _, line := range []string{"undo", "drag d2 d4", "drag d7 d5", "undo"} {
		if err := c.Execute(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	if !strings.Contains(out.String(), "nothing to undo") {
		t.Error("undo with no history should say so")
	}
	if len(s.History()) != 1 {
		t.Errorf("wanted one move left, got %v", s.History())
	}
	if err := c.Execute("reset"); err != nil {
		t.Fatal(err)
	}
	if s.Position() != board.ParsePlacement(board.StartingPlacement) {
		t.Error("reset should restore the start position")
	}
}

func TestConsoleRecordsEvents(t *testing.T) {
	s := pkg.NewSession(board.StartingPlacement, pkg.WithName("console"))
	var journal bytes.Buffer
	j := pkg.NewJournal(&journal)
	if err := j.Record(pkg.GeometryEvent(s.Geometry())); err != nil {
		t.Fatal(err)
	}
	c := New(s, io.Discard).SetEventFunc(func(ev pkg.PointerEvent) {
		if err := j.Record(ev); err != nil {
			t.Fatal(err)
		}
	})

	for _, line := range []string{"drag e2 e4", "undo", "flip", "drag e7 e5", "press 11 14", "release 11 10", "show"} {
		if err := c.Execute(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}

	replayed := pkg.NewSession(board.StartingPlacement, pkg.WithName("replay"))
	n, err := pkg.Replay(&journal, replayed)
	if err != nil {
		t.Fatal(err)
	}
	// geometry header, two drags, undo, flip and one press and release
	if n != 9 {
		t.Errorf("wanted 9 journaled events, got %d", n)
	}
	if replayed.Position() != s.Position() {
		t.Errorf("replayed %s, played %s", replayed.Position().Placement(), s.Position().Placement())
	}
}
