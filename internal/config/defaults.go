package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: 4,
		},
		History: HistoryConfig{
			Depth: 5,
		},
		Spawn: SpawnConfig{
			BaseValue:        2,
			BonusValue:       4,
			BonusProbability: 0.1,
		},
		Log: LogConfig{
			Limit: 30,
		},
		Input: InputConfig{
			MoveCooldownTicks: 0,
		},
		Keys: KeyConfig{
			Left:       []string{"left", "a", "h"},
			Right:      []string{"right", "d", "l"},
			Up:         []string{"up", "w", "k"},
			Down:       []string{"down", "s", "j"},
			NewGame:    []string{" ", "n"},
			Undo:       []string{"backspace", "u"},
			ForceSpawn: []string{"W"},
			Help:       []string{"?"},
			Quit:       []string{"q", "ctrl+c"},
		},
	}
}
