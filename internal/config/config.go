// Package config provides YAML-based configuration loading and difficulty
// presets for term2048.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for a 2048 session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	History HistoryConfig `yaml:"history"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Log     LogConfig     `yaml:"log"`
	Input   InputConfig   `yaml:"input"`
	Keys    KeyConfig     `yaml:"keys"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size"` // N for an N×N board
}

// HistoryConfig defines the undo buffer.
type HistoryConfig struct {
	Depth int `yaml:"depth"` // 0 disables undo
}

// SpawnConfig defines the tiles placed after every move.
type SpawnConfig struct {
	BaseValue        uint64  `yaml:"base_value"`
	BonusValue       uint64  `yaml:"bonus_value"`
	BonusProbability float64 `yaml:"bonus_probability"`
}

// LogConfig defines the on-screen event log.
type LogConfig struct {
	Limit int `yaml:"limit"`
}

// InputConfig defines how fast moves are accepted.
type InputConfig struct {
	MoveCooldownTicks int `yaml:"move_cooldown_ticks"` // ticks to ignore moves after one is applied
}

// KeyConfig lists the key names bound to each action.
// Names follow Bubble Tea's key strings ("left", "ctrl+c", " " for space).
type KeyConfig struct {
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Up         []string `yaml:"up"`
	Down       []string `yaml:"down"`
	NewGame    []string `yaml:"new_game"`
	Undo       []string `yaml:"undo"`
	ForceSpawn []string `yaml:"force_spawn"`
	Help       []string `yaml:"help"`
	Quit       []string `yaml:"quit"`
}

// Limits for validated fields.
const (
	MinBoardSize    = 2
	MaxBoardSize    = 8
	MaxHistoryDepth = 64
)

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.size %d outside [%d, %d]", c.Board.Size, MinBoardSize, MaxBoardSize))
	}
	if c.History.Depth < 0 || c.History.Depth > MaxHistoryDepth {
		errs = append(errs, fmt.Errorf("history.depth %d outside [0, %d]", c.History.Depth, MaxHistoryDepth))
	}
	if c.Spawn.BaseValue == 0 {
		errs = append(errs, errors.New("spawn.base_value must be positive"))
	}
	if c.Spawn.BonusValue == 0 {
		errs = append(errs, errors.New("spawn.bonus_value must be positive"))
	}
	if c.Spawn.BonusProbability < 0 || c.Spawn.BonusProbability > 1 {
		errs = append(errs, fmt.Errorf("spawn.bonus_probability %v outside [0, 1]", c.Spawn.BonusProbability))
	}
	if c.Log.Limit < 1 {
		errs = append(errs, fmt.Errorf("log.limit %d must be at least 1", c.Log.Limit))
	}
	if c.Input.MoveCooldownTicks < 0 {
		errs = append(errs, fmt.Errorf("input.move_cooldown_ticks %d is negative", c.Input.MoveCooldownTicks))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
