package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/t2048"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start an interactive game.

Default controls:
  Arrows/WASD/HJKL - Slide tiles
  Space/N          - New game
  Backspace/U      - Undo
  Shift+W          - Drop a 2048 tile (debug)
  ?                - Show all keys
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Keys can be rebound in the config file.

Difficulty options:
  easy   - 10 undo steps
  normal - 5 undo steps
  hard   - 1 undo step, bonus tiles twice as often

Examples:
  term2048 play
  term2048 play --difficulty easy
  term2048 play --seed 7 --log-file /tmp/2048.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; only log to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	game, err := t2048.New(gameOptions(cfg, seed, logger))
	if err != nil {
		return err
	}
	logger.Info("session started", "seed", seed, "size", cfg.Board.Size, "history", cfg.History.Depth)

	var screenshotDir string
	if home, err := os.UserHomeDir(); err == nil {
		screenshotDir = filepath.Join(home, ".term2048", "screenshots")
	}

	err = tui.Run(game, runtime, tui.Options{
		Keys:          tui.NewKeyMap(cfg.Keys),
		MoveCooldown:  cfg.Input.MoveCooldownTicks,
		ScreenshotDir: screenshotDir,
		Logger:        logger,
	})
	logger.Info("session ended", "game", game.ID(), "state", game.State(), "score", game.Score())
	return err
}
