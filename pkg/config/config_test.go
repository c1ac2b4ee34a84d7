package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/gui"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chessterm.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
placement: 4k3/8/8/8/8/8/8/4K3
geometry:
  origin: {x: 1, y: 0}
  squareSize: 3
  deadzone: 0.2
  flip: true
theme: mine
themes:
  - name: mine
    squareDark: "#202020"
    squareLight: "#e0e0e0"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := board.Geometry{Origin: board.Point{X: 1}, SquareSize: 3, Deadzone: 0.2, Flip: true}
	if diff := cmp.Diff(want, cfg.Geometry); diff != "" {
		t.Errorf("geometry (-want +got):\n%s", diff)
	}
	if cfg.Placement != "4k3/8/8/8/8/8/8/4K3" || cfg.LogPath != "./log" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	theme, err := cfg.ThemeFor()
	if err != nil || theme.Name != "mine" {
		t.Errorf("wanted theme mine, got %q %v", theme.Name, err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("wanted ErrNotExist got %v", err)
	}
	if _, err := Load(writeConfig(t, "geometry: [1, 2")); err == nil {
		t.Error("wanted a parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"square size", func(c *Config) { c.Geometry.SquareSize = 0 }, "Geometry.SquareSize must be greater than 0"},
		{"negative deadzone", func(c *Config) { c.Geometry.Deadzone = -0.1 }, "Geometry.Deadzone must be at least 0"},
		{"wide deadzone", func(c *Config) { c.Geometry.Deadzone = 0.5 }, "Geometry.Deadzone must be less than 0.5"},
		{"no placement", func(c *Config) { c.Placement = "" }, "Placement is required"},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, `no theme named "neon"`},
		{"unnamed theme", func(c *Config) { c.Themes = append(c.Themes, gui.ThemeHex{}) }, "Themes[0].Name is required"},
		{"strict placement", func(c *Config) { c.Strict, c.Placement = true, "rnbqkbnr/ppXppppp" }, "malformed placement"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("wanted ErrInvalid got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("wanted %q in %q", tc.want, err)
			}
		})
	}
}

func TestValidateLenientPlacement(t *testing.T) {
	cfg := Default()
	cfg.Placement = "rnbqkbnr/ppXppppp"
	if err := cfg.Validate(); err != nil {
		t.Errorf("non-strict config should accept any placement: %v", err)
	}
}
