package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/term2048/internal/t2048"
)

var flagEvents bool

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Replay a move sequence and print the final state",
	Long: `Start a game from --seed, apply the moves and print the final snapshot
as YAML. The seed is used as given, so seed 0 is reproducible too.

Moves are either single letters (l, r, u, d) or words (left, right, up,
down) separated by spaces or commas. Moves after the game ends are ignored.

Examples:
  term2048 replay --seed 42 llurdd
  term2048 replay --seed 42 "left, left, up"
  term2048 replay --seed 1 --events rrrr`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagEvents, "events", false, "Include the event log in the output")
}

// parseMoves accepts "llud" as well as "left, up down".
func parseMoves(s string) ([]t2048.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 1 && len(fields[0]) > 1 {
		if _, err := t2048.ParseDirection(fields[0]); err != nil {
			fields = strings.Split(fields[0], "")
		}
	}

	moves := make([]t2048.Direction, 0, len(fields))
	for i, f := range fields {
		dir, err := t2048.ParseDirection(f)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, dir)
	}
	return moves, nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	moves, err := parseMoves(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := t2048.New(gameOptions(cfg, flagSeed, logger))
	if err != nil {
		return err
	}
	game.NewGame()

	for i, dir := range moves {
		if game.State().Terminal() {
			logger.Warn("game ended before all moves", "applied", i, "total", len(moves))
			break
		}
		game.ApplyMove(dir)
	}

	snap := game.Snapshot()
	if !flagEvents {
		snap.Events = nil
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return enc.Close()
}
