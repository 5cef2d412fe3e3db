package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"LocalPaint/internal/board"
	"LocalPaint/internal/config"
	"LocalPaint/internal/paint"
	"LocalPaint/internal/raster"
	"LocalPaint/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "localpaint:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("localpaint", flag.ContinueOnError)
	path := fs.String("config", config.DefaultPath(), "path to TOML config file")
	width := fs.Int("width", 0, "canvas width in pixels (overrides config)")
	height := fs.Int("height", 0, "canvas height in pixels (overrides config)")
	bg := fs.String("bg", "", "background color #RRGGBB (overrides config)")
	history := fs.Int("history", -1, "max undo steps, 0 = unlimited (overrides config)")
	level := fs.String("log-level", "", "debug, info, warn or error (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return err
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *bg != "" {
		cfg.Background = *bg
	}
	if *history >= 0 {
		cfg.HistoryLimit = *history
	}
	if *level != "" {
		cfg.LogLevel = *level
	}

	opts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	paint.SetLogger(logger)

	slog.Info("starting", "width", cfg.Width, "height", cfg.Height,
		"background", cfg.Background, "history_limit", cfg.HistoryLimit)

	surface := raster.New(cfg.Width, cfg.Height, opts.Background)
	session := board.NewSession(surface, opts)
	ui.RunApp(session)
	return nil
}
