package pkg

import (
	"fmt"
	"log"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/qnkhuat/chessboard/pkg/board"
)

// Move is a committed relocation.
type Move struct {
	From     board.Coord
	To       board.Coord
	Piece    board.Piece  // the piece as it stands after the move
	Captured board.Square // what the destination held before the move
}

func (m Move) String() string {
	return fmt.Sprintf("%c %s-%s", m.Piece.Letter(), m.From, m.To)
}

type snapshot struct {
	move   Move
	before board.Position
}

// Session owns the position and the selection of one interactive board.
// It is not safe for concurrent use: every pointer event must be handled to
// completion before the next one.
type Session struct {
	name     string
	initial  board.Position
	pos      board.Position
	sel      Selection
	geometry board.Geometry
	rules    Rules
	history  []snapshot
}

type Option func(*Session)

func WithGeometry(g board.Geometry) Option {
	return func(s *Session) { s.geometry = g }
}

func WithRules(r Rules) Option {
	return func(s *Session) { s.rules = r }
}

func WithName(name string) Option {
	return func(s *Session) { s.name = name }
}

// NewSession starts a session from a placement string.
func NewSession(placement string, opts ...Option) *Session {
	s := &Session{
		initial:  board.ParsePlacement(placement),
		geometry: board.DefaultGeometry(),
		rules:    MinimalRules{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.name == "" {
		s.name = petname.Generate(2, "-")
	}
	s.pos = s.initial
	log.Printf("Session %s started from %s", s.name, placement)
	return s
}

func (s *Session) Name() string {
	return s.name
}

// Position returns a copy of the current position.
func (s *Session) Position() board.Position {
	return s.pos
}

func (s *Session) At(c board.Coord) board.Square {
	return s.pos.At(c)
}

func (s *Session) Selection() Selection {
	return s.sel
}

func (s *Session) Geometry() board.Geometry {
	return s.geometry
}

// SetGeometry replaces the board geometry. A held square stays held.
func (s *Session) SetGeometry(g board.Geometry) {
	s.geometry = g
}

// PickUp starts holding the piece under p. It does nothing and reports false
// when a piece is already held, p hits no square, or the square is empty.
func (s *Session) PickUp(p board.Point) bool {
	if _, ok := s.sel.Held(); ok {
		return false
	}
	c, ok := s.geometry.Locate(p)
	if !ok || s.pos.At(c).IsEmpty() {
		return false
	}
	s.sel = holding(c)
	return true
}

// Drop ends the hold and tries to move the held piece to the square under p.
// The selection is cleared whether or not the move is committed.
func (s *Session) Drop(p board.Point) (Move, error) {
	from, ok := s.sel.Held()
	s.sel = Selection{}
	if !ok {
		return Move{}, ErrNothingHeld
	}
	to, ok := s.geometry.Locate(p)
	if !ok {
		log.Printf("Session %s: dropped %s off the board", s.name, from)
		return Move{}, fmt.Errorf("drop from %s: %w", from, ErrOffBoard)
	}

	next, err := s.rules.Apply(s.pos, from, to)
	if err != nil {
		log.Printf("Session %s: rejected %s-%s: %v", s.name, from, to, err)
		return Move{}, fmt.Errorf("move %s-%s: %w", from, to, err)
	}

	moved, _ := next.At(to).Piece()
	m := Move{From: from, To: to, Piece: moved, Captured: s.pos.At(to)}
	s.history = append(s.history, snapshot{move: m, before: s.pos})
	s.pos = next
	log.Printf("Session %s: move %s", s.name, m)
	return m, nil
}

// HandleEvent dispatches an event. Primary presses pick up, primary
// releases drop and presses of other buttons are ignored. Session commands
// undo, reset, flip the board or replace its geometry. The returned Move is
// nil unless a move was committed.
func (s *Session) HandleEvent(ev PointerEvent) (*Move, error) {
	switch ev.Action {
	case ActionPress:
		if ev.Button == ButtonPrimary {
			s.PickUp(ev.Point())
		}
	case ActionRelease:
		if ev.Button != ButtonPrimary {
			return nil, nil
		}
		m, err := s.Drop(ev.Point())
		if err != nil {
			return nil, err
		}
		return &m, nil
	case ActionUndo:
		s.Undo()
	case ActionReset:
		s.Reset()
	case ActionFlip:
		g := s.geometry
		g.Flip = !g.Flip
		s.SetGeometry(g)
	case ActionGeometry:
		if ev.Geometry != nil {
			s.SetGeometry(*ev.Geometry)
		}
	}
	return nil, nil
}

// History returns the committed moves, oldest first.
func (s *Session) History() []Move {
	moves := make([]Move, len(s.history))
	for i, snap := range s.history {
		moves[i] = snap.move
	}
	return moves
}

func (s *Session) LastMove() (Move, bool) {
	if len(s.history) == 0 {
		return Move{}, false
	}
	return s.history[len(s.history)-1].move, true
}

// Undo restores the position before the last committed move.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.pos = last.before
	s.sel = Selection{}
	log.Printf("Session %s: undo %s", s.name, last.move)
	return true
}

// Reset returns to the initial position and forgets the history.
func (s *Session) Reset() {
	s.pos = s.initial
	s.sel = Selection{}
	s.history = nil
	log.Printf("Session %s: reset", s.name)
}
