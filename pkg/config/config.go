// Package config loads the optional YAML file shared by the chessterm
// commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/qnkhuat/chessboard/pkg/board"
	"github.com/qnkhuat/chessboard/pkg/gui"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Placement string         `yaml:"placement" validate:"required"`
	Geometry  board.Geometry `yaml:"geometry"`
	Theme     string         `yaml:"theme" validate:"required"`
	Themes    []gui.ThemeHex `yaml:"themes" validate:"dive"`
	LogPath   string         `yaml:"log"`
	// Strict rejects placements the lenient decoder would have to repair.
	Strict bool `yaml:"strict"`
}

func Default() Config {
	return Config{
		Placement: board.StartingPlacement,
		Geometry:  board.DefaultGeometry(),
		Theme:     gui.ThemeBasic.Name,
		LogPath:   "./log",
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints, that the theme exists and, in strict
// mode, the placement string.
func (c Config) Validate() error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		for _, fe := range verrs {
			errs = append(errs, fieldError(fe))
		}
	}
	if _, err := gui.ImportThemes(c.Theme, c.Themes); err != nil && c.Theme != "" {
		errs = append(errs, err)
	}
	if c.Strict {
		if err := board.ValidatePlacement(c.Placement); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func fieldError(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "gt":
		return fmt.Errorf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Errorf("%s must be at least %s", field, fe.Param())
	case "lt":
		return fmt.Errorf("%s must be less than %s", field, fe.Param())
	default:
		return fmt.Errorf("%s failed %s validation", field, fe.Tag())
	}
}

// ThemeFor resolves the configured theme.
func (c Config) ThemeFor() (gui.Theme, error) {
	return gui.ImportThemes(c.Theme, c.Themes)
}
