package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/t2048"
)

// loadConfig loads the config file and applies the difficulty flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is given. The returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }
	level := log.WarnLevel

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", flagLogFile, err)
		}
		w = f
		closeFn = f.Close
		level = log.InfoLevel
	}
	if flagVerbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "term2048",
		Level:           level,
	})
	return logger, closeFn, nil
}

// gameOptions converts the file config to engine options.
func gameOptions(cfg config.Config, seed int64, logger *log.Logger) t2048.Options {
	return t2048.Options{
		Size:             cfg.Board.Size,
		HistoryDepth:     cfg.History.Depth,
		BaseValue:        cfg.Spawn.BaseValue,
		BonusValue:       cfg.Spawn.BonusValue,
		BonusProbability: cfg.Spawn.BonusProbability,
		LogLimit:         cfg.Log.Limit,
		Seed:             seed,
		Logger:           logger,
	}
}
