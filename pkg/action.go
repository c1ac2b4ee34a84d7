package pkg

import (
	"fmt"

	"github.com/qnkhuat/chessboard/pkg/board"
)

type Action string

const (
	ActionPress   Action = "press"
	ActionRelease Action = "release"
	// Session commands. They carry no button or location.
	ActionUndo  Action = "undo"
	ActionReset Action = "reset"
	ActionFlip  Action = "flip"
	// ActionGeometry replaces the board geometry. A journal starts with one
	// so replay maps locations the way they were recorded.
	ActionGeometry Action = "geometry"
)

func (a Action) valid() bool {
	switch a {
	case ActionPress, ActionRelease, ActionUndo, ActionReset, ActionFlip, ActionGeometry:
		return true
	}
	return false
}

type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// PointerEvent is a button press or release at a location in board units,
// or one of the session commands that change what later events mean.
type PointerEvent struct {
	Action   Action          `json:"action"`
	Button   Button          `json:"button,omitempty"`
	X        float64         `json:"x,omitempty"`
	Y        float64         `json:"y,omitempty"`
	Geometry *board.Geometry `json:"geometry,omitempty"`
}

func Press(p board.Point) PointerEvent {
	return PointerEvent{Action: ActionPress, Button: ButtonPrimary, X: p.X, Y: p.Y}
}

func Release(p board.Point) PointerEvent {
	return PointerEvent{Action: ActionRelease, Button: ButtonPrimary, X: p.X, Y: p.Y}
}

// Command returns a session command event such as ActionUndo.
func Command(a Action) PointerEvent {
	return PointerEvent{Action: a}
}

// GeometryEvent returns an event that replaces the board geometry with g.
func GeometryEvent(g board.Geometry) PointerEvent {
	return PointerEvent{Action: ActionGeometry, Geometry: &g}
}

func (e PointerEvent) Point() board.Point {
	return board.Point{X: e.X, Y: e.Y}
}

func (e PointerEvent) String() string {
	switch e.Action {
	case ActionPress, ActionRelease:
	case ActionGeometry:
		if e.Geometry != nil {
			return fmt.Sprintf("geometry %+v", *e.Geometry)
		}
		return string(e.Action)
	default:
		return string(e.Action)
	}
	return fmt.Sprintf("%s %s (%g, %g)", e.Button, e.Action, e.X, e.Y)
}
