package main

import (
	"flag"
	"log/slog"

	"github.com/soocke/rti-acquire/app"
	"github.com/soocke/rti-acquire/config"
)

func main() {
	defaultPath, pathErr := config.DefaultPath()
	cfgPath := flag.String("config", defaultPath, "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime diagnostics")
	flag.Parse()

	// Base config from file, falling back to defaults
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if *debugFlag {
		cfg.Debug = true
	}

	// Set up logger
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if pathErr != nil {
		logger.Warn("no default config path", "error", pathErr)
	}
	if err != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	c := app.BuildContainer(cfg, logger, *cfgPath)
	application := app.NewApp("RTI Acquire", c)
	application.Start()
}
