package t2048

// State is the game lifecycle state.
type State string

const (
	StateInitialized State = "initialized"
	StateInGame      State = "in_game"
	StateGameOver    State = "game_over"
	StateWon         State = "won"
)

// Terminal reports whether the state only ends with a new game.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWon
}
