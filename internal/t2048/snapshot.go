package t2048

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	ID           string     `yaml:"id"`
	State        State      `yaml:"state"`
	Score        uint64     `yaml:"score"`
	Moves        int        `yaml:"moves"`
	MaxTile      uint64     `yaml:"max_tile"`
	HistoryDepth int        `yaml:"history_depth"`
	Board        [][]uint64 `yaml:"board,flow"`
	Events       []string   `yaml:"events,omitempty"`
}

// Snapshot returns a value copy of the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:           g.ID(),
		State:        g.state,
		Score:        g.score.Value(),
		Moves:        g.moves,
		MaxTile:      g.board.MaxTile(),
		HistoryDepth: g.history.Depth(),
		Board:        g.board.Values(),
		Events:       g.events.Messages(),
	}
}
