// Package config loads LocalPaint settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"LocalPaint/internal/board"
	"LocalPaint/internal/paint"

	"github.com/BurntSushi/toml"
)

const (
	appDir   = "localpaint"
	fileName = "config.toml"

	maxSide = 16384
)

// ErrInvalidSize is returned for a canvas dimension outside 1..16384.
var ErrInvalidSize = errors.New("invalid canvas size")

// Config is the on-disk configuration. Colors are "#RRGGBB" strings.
type Config struct {
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	Background    string  `toml:"background"`
	StrokeColor   string  `toml:"stroke_color"`
	LineWidth     float64 `toml:"line_width"`
	Shape         string  `toml:"shape"`
	HistoryLimit  int     `toml:"history_limit"`
	FillTolerance int     `toml:"fill_tolerance"`
	LogLevel      string  `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:         800,
		Height:        600,
		Background:    "#ffffff",
		StrokeColor:   "#000000",
		LineWidth:     1,
		Shape:         paint.ModeFree.String(),
		HistoryLimit:  0,
		FillTolerance: paint.DefaultTolerance,
		LogLevel:      "info",
	}
}

// DefaultPath is <user config dir>/localpaint/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, appDir, fileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		slog.Warn("config: unknown keys ignored", "path", path, "keys", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that has a restricted domain.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Width > maxSide || c.Height <= 0 || c.Height > maxSide {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if _, err := paint.ParseColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := paint.ParseColor(c.StrokeColor); err != nil {
		return fmt.Errorf("stroke_color: %w", err)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %v", c.LineWidth)
	}
	if _, err := paint.ParseShapeMode(c.Shape); err != nil {
		return err
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	if c.FillTolerance < 0 || c.FillTolerance > 255 {
		return fmt.Errorf("fill_tolerance must be in 0..255, got %d", c.FillTolerance)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// SessionOptions converts a validated Config into board options.
func (c Config) SessionOptions() (board.Options, error) {
	if err := c.Validate(); err != nil {
		return board.Options{}, err
	}
	bg, _ := paint.ParseColor(c.Background)
	pen, _ := paint.ParseColor(c.StrokeColor)
	mode, _ := paint.ParseShapeMode(c.Shape)
	return board.Options{
		Background: bg,
		Style: paint.DrawStyle{
			StrokeColor: pen,
			FillColor:   pen,
			LineWidth:   c.LineWidth,
			Mode:        mode,
		},
		HistoryLimit:  c.HistoryLimit,
		FillTolerance: c.FillTolerance,
	}, nil
}
