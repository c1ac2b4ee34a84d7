package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name        string
	SquareDark  tcell.Color
	SquareLight tcell.Color
	SquareHigh  tcell.Color // last move
	SquareHeld  tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Rank        tcell.Color
	File        tcell.Color
	Status      tcell.Color
}

// ThemeHex is the form of a Theme found in config files
type ThemeHex struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	SquareDark  string `json:"squareDark" yaml:"squareDark"`
	SquareLight string `json:"squareLight" yaml:"squareLight"`
	SquareHigh  string `json:"squareHigh" yaml:"squareHigh"`
	SquareHeld  string `json:"squareHeld" yaml:"squareHeld"`
	White       string `json:"white" yaml:"white"`
	Black       string `json:"black" yaml:"black"`
	Rank        string `json:"rank" yaml:"rank"`
	File        string `json:"file" yaml:"file"`
	Status      string `json:"status" yaml:"status"`
}

const defaultColorName = "default"

// fmtHex keeps ColorDefault distinguishable from black once exported
func fmtHex(c tcell.Color) string {
	v := c.Hex()
	if v == -1 {
		return defaultColorName
	}
	return fmt.Sprintf("#%06x", v)
}

func parseColor(s string) tcell.Color {
	if s == "" || s == defaultColorName {
		return tcell.ColorDefault
	}
	return tcell.GetColor(s)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:        t.Name,
		SquareDark:  fmtHex(t.SquareDark),
		SquareLight: fmtHex(t.SquareLight),
		SquareHigh:  fmtHex(t.SquareHigh),
		SquareHeld:  fmtHex(t.SquareHeld),
		White:       fmtHex(t.White),
		Black:       fmtHex(t.Black),
		Rank:        fmtHex(t.Rank),
		File:        fmtHex(t.File),
		Status:      fmtHex(t.Status),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		Name:        t.Name,
		SquareDark:  parseColor(t.SquareDark),
		SquareLight: parseColor(t.SquareLight),
		SquareHigh:  parseColor(t.SquareHigh),
		SquareHeld:  parseColor(t.SquareHeld),
		White:       parseColor(t.White),
		Black:       parseColor(t.Black),
		Rank:        parseColor(t.Rank),
		File:        parseColor(t.File),
		Status:      parseColor(t.Status),
	}
}

// ImportThemes returns the theme called want. Themes from the config take
// precedence over the built-in ones.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("theme: no theme named %q", want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:        "basic",
	SquareDark:  tcell.Color188,
	SquareLight: tcell.Color230,
	SquareHigh:  tcell.Color226,
	SquareHeld:  tcell.Color218,
	White:       tcell.Color232,
	Black:       tcell.Color232,
	Rank:        tcell.Color247,
	File:        tcell.Color247,
	Status:      tcell.Color160,
}

var ThemeWood = Theme{
	Name:        "wood",
	SquareDark:  tcell.Color137,
	SquareLight: tcell.Color223,
	SquareHigh:  tcell.Color185,
	SquareHeld:  tcell.Color174,
	White:       tcell.Color231,
	Black:       tcell.Color16,
	Rank:        tcell.Color180,
	File:        tcell.Color180,
	Status:      tcell.ColorDefault,
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeWood}
