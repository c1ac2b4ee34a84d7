package main

import (
	"flag"
	"log"
	"os"

	"github.com/qnkhuat/chessboard/pkg"
	"github.com/qnkhuat/chessboard/pkg/config"
	"github.com/qnkhuat/chessboard/pkg/console"
	"github.com/qnkhuat/chessboard/pkg/gui"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logPath := flag.String("log", "", "path to log file (overrides config)")
	placement := flag.String("placement", "", "starting placement (overrides config)")
	name := flag.String("name", "", "session name, generated when empty")
	flip := flag.Bool("flip", false, "draw the board from black's side")
	themeName := flag.String("theme", "", "theme name (overrides config)")
	strict := flag.Bool("strict", false, "reject malformed placements")
	printOnly := flag.Bool("print", false, "print the starting board and exit")
	useConsole := flag.Bool("console", false, "use the line console instead of the mouse board")
	record := flag.String("record", "", "append every pointer event to this journal")
	replay := flag.String("replay", "", "replay a journal before starting")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if *placement != "" {
		cfg.Placement = *placement
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	cfg.Geometry.Flip = cfg.Geometry.Flip || *flip
	cfg.Strict = cfg.Strict || *strict
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logFile, err := pkg.InitLog(cfg.LogPath, "CLIENT: ")
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer logFile.Close()

	opts := []pkg.Option{pkg.WithGeometry(cfg.Geometry)}
	if *name != "" {
		opts = append(opts, pkg.WithName(*name))
	}
	s := pkg.NewSession(cfg.Placement, opts...)
	log.Printf("New session %s", s.Name())

	if *replay != "" {
		f, err := os.Open(*replay)
		if err != nil {
			log.Fatalf("Failed to open journal: %v", err)
		}
		n, err := pkg.Replay(f, s)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to replay journal: %v", err)
		}
		log.Printf("Replayed %d events", n)
	}

	var recordEvent func(ev pkg.PointerEvent)
	if *record != "" && !*printOnly {
		f, j, err := openJournal(*record, s)
		if err != nil {
			log.Fatalf("Failed to open journal: %v", err)
		}
		defer f.Close()
		recordEvent = func(ev pkg.PointerEvent) {
			if err := j.Record(ev); err != nil {
				log.Printf("Failed to record %s: %v", ev, err)
			}
		}
	}

	tty := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	switch {
	case *printOnly || (!tty && !*useConsole):
		console.PrintBoard(os.Stdout, s.Position(), s.Geometry().Flip)
		return
	case *useConsole:
		if err := runConsole(s, recordEvent); err != nil {
			log.Printf("Console: %v", err)
			os.Exit(1)
		}
		return
	}

	theme, err := cfg.ThemeFor()
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}
	app := gui.NewApp(s, theme)
	app.Board.SetEventFunc(recordEvent)
	if err := app.Run(); err != nil {
		log.Fatalf("Failed to run: %v", err)
	}
}

// openJournal appends to the journal at path. The current geometry is
// written first so replay maps pointer locations the same way.
func openJournal(path string, s *pkg.Session) (*os.File, *pkg.Journal, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	j := pkg.NewJournal(f)
	if err := j.Record(pkg.GeometryEvent(s.Geometry())); err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, j, nil
}

func runConsole(s *pkg.Session, recordEvent func(ev pkg.PointerEvent)) error {
	rl, err := console.NewReadline(s.Name()+"> ", "")
	if err != nil {
		return err
	}
	defer rl.Close()
	return console.New(s, rl.Stdout()).SetEventFunc(recordEvent).Run(rl)
}
