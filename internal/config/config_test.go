package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"LocalPaint/internal/paint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width = 320
height = 240
background = "#202020"
stroke_color = "#ff0000"
line_width = 5.0
shape = "ellipse"
history_limit = 25
log_level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 240, cfg.Height)
	assert.Equal(t, "#202020", cfg.Background)
	assert.Equal(t, 5.0, cfg.LineWidth)
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, paint.DefaultTolerance, cfg.FillTolerance, "unset keys keep defaults")

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"size":      "width = 0",
		"huge":      "height = 100000",
		"color":     `background = "white"`,
		"pen":       `stroke_color = "#12"`,
		"width":     "line_width = -1.0",
		"shape":     `shape = "star"`,
		"history":   "history_limit = -2",
		"tolerance": "fill_tolerance = 300",
		"level":     `log_level = "loud"`,
		"syntax":    "width = ",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestValidateSentinels(t *testing.T) {
	cfg := Default()
	cfg.Width = -1
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidSize))

	cfg = Default()
	cfg.Background = "#zzzzzz"
	assert.True(t, errors.Is(cfg.Validate(), paint.ErrInvalidColor))
}

func TestSessionOptions(t *testing.T) {
	cfg := Default()
	cfg.Background = "#000000"
	cfg.StrokeColor = "#00ff00"
	cfg.Shape = "fill"
	cfg.LineWidth = 7
	cfg.HistoryLimit = 3
	cfg.FillTolerance = 9

	opts, err := cfg.SessionOptions()
	require.NoError(t, err)

	assert.Equal(t, paint.Black, opts.Background)
	assert.Equal(t, paint.Color{G: 255}, opts.Style.StrokeColor)
	assert.Equal(t, paint.ModeFill, opts.Style.Mode)
	assert.Equal(t, 7.0, opts.Style.LineWidth)
	assert.Equal(t, 3, opts.HistoryLimit)
	assert.Equal(t, 9, opts.FillTolerance)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, appDir, filepath.Base(filepath.Dir(DefaultPath())))
}
