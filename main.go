package main

import (
	"flag"
	"log/slog"
	"os"

	"BezierBoard/internal/config"
	"BezierBoard/internal/logging"
	"BezierBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides the config)")
	width := flag.Int("width", 0, "board width in pixels (overrides the config)")
	height := flag.Int("height", 0, "board height in pixels (overrides the config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("loading config", slog.String("path", *configPath), slog.Any("err", err))
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))
	log := logging.WithComponent("main")
	log.Info("starting", slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))

	if err := ui.RunApp(cfg); err != nil {
		log.Error("running editor", slog.Any("err", err))
		os.Exit(1)
	}
}
