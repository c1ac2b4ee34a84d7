package gui

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/chessboard/pkg"
	"github.com/rivo/tview"
)

// App is the interactive terminal front end of a session.
type App struct {
	App     *tview.Application
	Board   *BoardView
	Status  *tview.TextView
	Layout  *tview.Flex
	session *pkg.Session
}

const helpText = "drag pieces with the mouse · u undo · r reset · f flip · q quit"

func NewApp(s *pkg.Session, t Theme) *App {
	app := tview.NewApplication()

	status := tview.NewTextView().
		SetTextColor(t.Status)

	help := tview.NewTextView().
		SetText(helpText).
		SetTextColor(t.File)

	boardView := NewBoardView(s, t)
	boardView.SetBorder(true).
		SetTitle(fmt.Sprintf(" %s ", s.Name()))

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(boardView, boardHeight(s), 0, true).
		AddItem(status, 1, 0, false).
		AddItem(help, 1, 0, false)

	a := &App{
		App:     app,
		Board:   boardView,
		Status:  status,
		Layout:  layout,
		session: s,
	}
	boardView.SetChangedFunc(a.moved)
	app.SetInputCapture(a.handleKey)
	a.refreshStatus()
	return a
}

// boardHeight is the number of rows the bordered board needs.
func boardHeight(s *pkg.Session) int {
	_, bottom := unitsToCell(0, 0, s.Geometry().Bounds().Max)
	// file labels plus the border
	return bottom + 1 + 2
}

func (a *App) Run() error {
	return a.App.SetRoot(a.Layout, true).EnableMouse(true).Run()
}

func (a *App) moved(m *pkg.Move, err error) {
	if err != nil {
		log.Printf("Invalid move: %v", err)
		return
	}
	log.Printf("Move: %s", m)
	a.refreshStatus()
}

func (a *App) refreshStatus() {
	last, ok := a.session.LastMove()
	if !ok {
		a.Status.SetText(fmt.Sprintf("%s · no moves yet", a.session.Name()))
		return
	}
	a.Status.SetText(fmt.Sprintf("%s · move %d: %s", a.session.Name(), len(a.session.History()), last))
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyEscape {
		a.App.Stop()
		return nil
	}
	switch ev.Rune() {
	case 'q':
		a.App.Stop()
	case 'u':
		a.Board.Apply(pkg.Command(pkg.ActionUndo))
		a.refreshStatus()
	case 'r':
		a.Board.Apply(pkg.Command(pkg.ActionReset))
		a.refreshStatus()
	case 'f':
		a.Board.Apply(pkg.Command(pkg.ActionFlip))
	default:
		return ev
	}
	return nil
}
