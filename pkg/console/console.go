package console

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/qnkhuat/chessboard/pkg"
	"github.com/qnkhuat/chessboard/pkg/board"
)

var (
	ErrUsage   = errors.New("usage")
	errQuit    = errors.New("quit")
	ErrUnknown = errors.New("unknown command")
)

// LineReader is the part of a readline instance the console needs.
type LineReader interface {
	Readline() (string, error)
}

// NewReadline opens an interactive line editor with history kept in
// historyFile. An empty historyFile keeps history in memory only.
func NewReadline(prompt, historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
}

type command struct {
	name    string
	usage   string
	desc    string
	handler func(c *Console, args []string) error
}

// Console runs text commands against one session.
type Console struct {
	session  *pkg.Session
	out      io.Writer
	commands map[string]*command
	events   func(ev pkg.PointerEvent)
}

func New(s *pkg.Session, out io.Writer) *Console {
	c := &Console{
		session:  s,
		out:      out,
		commands: make(map[string]*command),
	}
	for _, cmd := range []*command{
		{"press", "press X Y", "press the pointer at (X, Y)", pressHandler},
		{"release", "release X Y", "release the pointer at (X, Y)", releaseHandler},
		{"drag", "drag FROM TO", "press at the centre of FROM and release at the centre of TO", dragHandler},
		{"undo", "undo", "take back the last move", undoHandler},
		{"reset", "reset", "go back to the starting position", resetHandler},
		{"flip", "flip", "turn the board around", flipHandler},
		{"show", "show", "print the board", showHandler},
		{"fen", "fen", "print the placement string", fenHandler},
		{"history", "history", "list the moves made", historyHandler},
		{"help", "help", "show this help", helpHandler},
		{"quit", "quit", "leave the console", quitHandler},
	} {
		c.commands[cmd.name] = cmd
	}
	return c
}

// SetEventFunc sets a handler that sees every event the console sends to
// the session. Used to journal a game.
func (c *Console) SetEventFunc(handler func(ev pkg.PointerEvent)) *Console {
	c.events = handler
	return c
}

func (c *Console) apply(ev pkg.PointerEvent) (*pkg.Move, error) {
	if c.events != nil {
		c.events(ev)
	}
	return c.session.HandleEvent(ev)
}

// Run reads commands from rl until quit, end of input or an interrupt.
func Run(rl LineReader, w io.Writer, s *pkg.Session) error {
	return New(s, w).Run(rl)
}

func (c *Console) Run(rl LineReader) error {
	PrintBoard(c.out, c.session.Position(), c.session.Geometry().Flip)
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := c.Execute(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			errStyle.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

// Execute runs a single command line. Blank lines do nothing.
func (c *Console) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := c.commands[fields[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, fields[0])
	}
	if err := cmd.handler(c, fields[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w: %s", err, cmd.usage)
		}
		return err
	}
	return nil
}

func parsePoint(args []string) (board.Point, error) {
	if len(args) != 2 {
		return board.Point{}, ErrUsage
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return board.Point{}, fmt.Errorf("%w: bad x %q", ErrUsage, args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return board.Point{}, fmt.Errorf("%w: bad y %q", ErrUsage, args[1])
	}
	return board.Point{X: x, Y: y}, nil
}

func (c *Console) report(m *pkg.Move, err error) error {
	if err != nil {
		return err
	}
	if m != nil {
		infoStyle.Fprintf(c.out, "%s\n", m)
		PrintBoard(c.out, c.session.Position(), c.session.Geometry().Flip)
	}
	return nil
}

func pressHandler(c *Console, args []string) error {
	p, err := parsePoint(args)
	if err != nil {
		return err
	}
	_, wasHolding := c.session.Selection().Held()
	c.apply(pkg.Press(p))
	held, ok := c.session.Selection().Held()
	if wasHolding || !ok {
		fmt.Fprintln(c.out, "nothing picked up")
		return nil
	}
	fmt.Fprintf(c.out, "holding %s\n", held)
	return nil
}

func releaseHandler(c *Console, args []string) error {
	p, err := parsePoint(args)
	if err != nil {
		return err
	}
	return c.report(c.apply(pkg.Release(p)))
}

func dragHandler(c *Console, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	from, err := board.ParseCoord(args[0])
	if err != nil {
		return err
	}
	to, err := board.ParseCoord(args[1])
	if err != nil {
		return err
	}
	if _, held := c.session.Selection().Held(); held {
		return fmt.Errorf("already holding a piece")
	}
	g := c.session.Geometry()
	c.apply(pkg.Press(g.Center(from)))
	if _, held := c.session.Selection().Held(); !held {
		return fmt.Errorf("cannot pick up from %s", from)
	}
	return c.report(c.apply(pkg.Release(g.Center(to))))
}

func undoHandler(c *Console, args []string) error {
	if len(c.session.History()) == 0 {
		fmt.Fprintln(c.out, "nothing to undo")
		return nil
	}
	c.apply(pkg.Command(pkg.ActionUndo))
	PrintBoard(c.out, c.session.Position(), c.session.Geometry().Flip)
	return nil
}

func resetHandler(c *Console, args []string) error {
	c.apply(pkg.Command(pkg.ActionReset))
	PrintBoard(c.out, c.session.Position(), c.session.Geometry().Flip)
	return nil
}

func flipHandler(c *Console, args []string) error {
	c.apply(pkg.Command(pkg.ActionFlip))
	PrintBoard(c.out, c.session.Position(), c.session.Geometry().Flip)
	return nil
}

func showHandler(c *Console, args []string) error {
	PrintBoard(c.out, c.session.Position(), c.session.Geometry().Flip)
	if held, ok := c.session.Selection().Held(); ok {
		fmt.Fprintf(c.out, "holding %s\n", held)
	}
	return nil
}

func fenHandler(c *Console, args []string) error {
	fmt.Fprintln(c.out, c.session.Position().Placement())
	return nil
}

func historyHandler(c *Console, args []string) error {
	moves := c.session.History()
	if len(moves) == 0 {
		fmt.Fprintln(c.out, "no moves yet")
		return nil
	}
	for i, m := range moves {
		fmt.Fprintf(c.out, "%3d. %s\n", i+1, m)
	}
	return nil
}

func helpHandler(c *Console, args []string) error {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := c.commands[name]
		fmt.Fprintf(c.out, "  %-14s %s\n", cmd.usage, cmd.desc)
	}
	return nil
}

func quitHandler(c *Console, args []string) error {
	return errQuit
}
