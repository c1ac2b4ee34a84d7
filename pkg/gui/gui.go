// Package gui draws a session's board in the terminal and turns mouse
// presses and releases into pick-up and drop events.
package gui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessboard/pkg"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/rivo/tview"
)

// BoardView is a tview primitive showing one session. It reads the position
// and selection every frame and never changes them except through the
// session's pick-up and drop operations.
type BoardView struct {
	*tview.Box
	session *pkg.Session
	theme   Theme

	dragging     bool
	dragX, dragY int

	changed func(m *pkg.Move, err error)
	events  func(ev pkg.PointerEvent)
}

func NewBoardView(s *pkg.Session, t Theme) *BoardView {
	return &BoardView{
		Box:     tview.NewBox(),
		session: s,
		theme:   t,
	}
}

// SetChangedFunc sets a handler called after every drop, committed or not.
func (v *BoardView) SetChangedFunc(handler func(m *pkg.Move, err error)) *BoardView {
	v.changed = handler
	return v
}

// SetEventFunc sets a handler that sees every pointer event before the
// session does. Used to journal a game.
func (v *BoardView) SetEventFunc(handler func(ev pkg.PointerEvent)) *BoardView {
	v.events = handler
	return v
}

// Apply passes ev to the event handler and then to the session. Every change
// to the session made through the view goes through here.
func (v *BoardView) Apply(ev pkg.PointerEvent) (*pkg.Move, error) {
	if v.events != nil {
		v.events(ev)
	}
	return v.session.HandleEvent(ev)
}

// pointAt converts a screen cell into geometry units.
func (v *BoardView) pointAt(col, row int) board.Point {
	x, y, _, _ := v.GetInnerRect()
	return cellToUnits(x, y, col, row)
}

func (v *BoardView) Draw(screen tcell.Screen) {
	v.Box.Draw(screen)
	x, y, _, _ := v.GetInnerRect()
	g := v.session.Geometry()
	pos := v.session.Position()
	held, holding := v.session.Selection().Held()
	last, hasLast := v.session.LastMove()

	for file := 0; file < board.Size; file++ {
		for rank := 0; rank < board.Size; rank++ {
			c := board.Coord{File: file, Rank: rank}
			sq := pos.At(c)
			sqBg := squareBg(c, v.theme)

			// Use the highlight color to mark the last move
			if hasLast && (c == last.From || c == last.To) {
				sqBg = v.theme.SquareHigh
			}
			if holding && c == held {
				sqBg = v.theme.SquareHeld
				// The held piece follows the pointer instead
				if v.dragging {
					sq = board.Empty
				}
			}
			drawSquare(screen, squareCells(g, x, y, c), sq, sqBg, v.theme)
		}
	}
	drawRanks(screen, g, x, y, v.theme)
	drawFiles(screen, g, x, y, v.theme)

	if holding && v.dragging {
		if p, ok := pos.At(held).Piece(); ok {
			drawFloating(screen, v.dragX, v.dragY, p, v.theme)
		}
	}
}

// pointerEvent maps a tview mouse action onto a session pointer event.
func pointerEvent(action tview.MouseAction, p board.Point) (pkg.PointerEvent, bool) {
	ev := pkg.PointerEvent{X: p.X, Y: p.Y}
	switch action {
	case tview.MouseLeftDown:
		ev.Action, ev.Button = pkg.ActionPress, pkg.ButtonPrimary
	case tview.MouseLeftUp:
		ev.Action, ev.Button = pkg.ActionRelease, pkg.ButtonPrimary
	case tview.MouseRightDown:
		ev.Action, ev.Button = pkg.ActionPress, pkg.ButtonSecondary
	case tview.MouseRightUp:
		ev.Action, ev.Button = pkg.ActionRelease, pkg.ButtonSecondary
	case tview.MouseMiddleDown:
		ev.Action, ev.Button = pkg.ActionPress, pkg.ButtonMiddle
	case tview.MouseMiddleUp:
		ev.Action, ev.Button = pkg.ActionRelease, pkg.ButtonMiddle
	default:
		return ev, false
	}
	return ev, true
}

func (v *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return v.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		col, row := event.Position()
		_, holding := v.session.Selection().Held()

		if action == tview.MouseMove {
			if !holding {
				return false, nil
			}
			v.dragX, v.dragY = col, row
			return true, v
		}

		ev, ok := pointerEvent(action, v.pointAt(col, row))
		if !ok {
			return false, nil
		}
		if !v.InRect(col, row) && !(holding && ev.Action == pkg.ActionRelease) {
			return false, nil
		}
		if ev.Action == pkg.ActionPress {
			setFocus(v)
		}

		m, err := v.Apply(ev)
		if _, held := v.session.Selection().Held(); held {
			v.dragging = true
			v.dragX, v.dragY = col, row
			return true, v
		}
		v.dragging = false
		if ev.Action == pkg.ActionRelease && ev.Button == pkg.ButtonPrimary &&
			v.changed != nil && !errors.Is(err, pkg.ErrNothingHeld) {
			v.changed(m, err)
		}
		return true, nil
	})
}
