// Package t2048 implements the 2048 tile-sliding engine: the board, the four
// directional moves, tile spawning, win and loss detection, scoring and a
// bounded undo history. Hosts drive a Game and read it back through
// Cells, Snapshot and Render.
package t2048

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Defaults used when Options leave a field unset.
const (
	DefaultSize             = 4
	DefaultHistoryDepth     = 5
	DefaultBaseValue        = 2
	DefaultBonusValue       = 4
	DefaultBonusProbability = 0.1
)

// Options configures a Game.
type Options struct {
	Size             int     // board dimension N
	HistoryDepth     int     // undo snapshots kept; 0 disables undo
	BaseValue        uint64  // tile spawned after every move
	BonusValue       uint64  // extra tile spawned with BonusProbability
	BonusProbability float64 // in [0, 1]
	LogLimit         int     // event log entries kept
	Seed             int64
	Logger           *log.Logger
}

// DefaultOptions returns the classic 4×4 setup.
func DefaultOptions() Options {
	return Options{
		Size:             DefaultSize,
		HistoryDepth:     DefaultHistoryDepth,
		BaseValue:        DefaultBaseValue,
		BonusValue:       DefaultBonusValue,
		BonusProbability: DefaultBonusProbability,
		LogLimit:         DefaultLogLimit,
	}
}

func (o Options) validate() error {
	var errs []error
	if o.Size < 0 {
		errs = append(errs, fmt.Errorf("size %d is negative", o.Size))
	}
	if o.HistoryDepth < 0 {
		errs = append(errs, fmt.Errorf("history depth %d is negative", o.HistoryDepth))
	}
	if o.BonusProbability < 0 || o.BonusProbability > 1 {
		errs = append(errs, fmt.Errorf("bonus probability %v outside [0, 1]", o.BonusProbability))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("t2048: invalid options: %w", err)
	}
	return nil
}

// Game is a single 2048 session. It is not safe for concurrent use; the
// host owns it and mutates it from one goroutine.
type Game struct {
	opts   Options
	id     uuid.UUID
	rng    *rand.Rand
	logger *log.Logger

	board   *Board
	score   Score
	history *History
	events  *EventLog
	state   State
	moves   int
}

// New creates a game in the Initialized state. Call NewGame to start playing.
func New(opts Options) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.BaseValue == 0 {
		opts.BaseValue = DefaultBaseValue
	}
	if opts.BonusValue == 0 {
		opts.BonusValue = DefaultBonusValue
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Game{
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		logger:  opts.Logger,
		board:   NewBoard(opts.Size),
		history: NewHistory(opts.HistoryDepth),
		events:  NewEventLog(opts.LogLimit),
		state:   StateInitialized,
	}, nil
}

// addEvent appends to the event log and mirrors the entry to the logger.
func (g *Game) addEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.events.Add(msg)
	g.logger.Info(msg, "game", g.id)
}

// NewGame clears the board, score and history, spawns the opening tiles and
// enters InGame. The event log is kept across games.
func (g *Game) NewGame() {
	g.id = uuid.New()
	g.addEvent("NEW GAME")

	g.board = NewBoard(g.opts.Size)
	g.score = Score{}
	g.history.Clear()
	g.moves = 0

	if !g.spawnTurnTiles() {
		g.logger.Error("cannot place first tile", "game", g.id, "size", g.opts.Size)
	}
	g.state = StateInGame
}

// ApplyMove slides the board in dir. The board is pushed into the undo
// history before sliding, even when nothing ends up moving. When tiles move,
// new tiles spawn and the win and loss conditions are evaluated.
// It reports whether the board changed.
func (g *Game) ApplyMove(dir Direction) bool {
	if g.state != StateInGame {
		return false
	}

	g.history.Push(g.board)
	if !Slide(g.board, &g.score, dir) {
		g.logger.Debug("move changed nothing", "game", g.id, "dir", dir)
		return false
	}
	g.moves++

	g.spawnTurnTiles()
	g.board.refreshBuckets()
	g.evaluate()
	return true
}

// evaluate checks win first, so a move that both wins and fills the board
// counts as a win.
func (g *Game) evaluate() {
	if g.CheckGameWon() {
		return
	}
	g.CheckGameOver()
}

// CheckGameOver moves an in-progress game to GameOver when no move is left.
func (g *Game) CheckGameOver() bool {
	if g.state != StateInGame || !IsGameOver(g.board) {
		return false
	}
	g.state = StateGameOver
	g.addEvent("Game over")
	g.logger.Info("game finished", "game", g.id, "state", g.state, "score", g.score.Value(), "max_tile", g.board.MaxTile())
	return true
}

// CheckGameWon moves an in-progress game to Won once a 2048 tile exists.
func (g *Game) CheckGameWon() bool {
	if g.state != StateInGame || !HasWinningTile(g.board) {
		return false
	}
	g.state = StateWon
	g.addEvent("You won!")
	g.logger.Info("game finished", "game", g.id, "state", g.state, "score", g.score.Value(), "moves", g.moves)
	return true
}

// Undo restores the board from before the last attempted move.
// The score is left as it is.
func (g *Game) Undo() bool {
	if g.state != StateInGame {
		g.addEvent("Can not move back")
		return false
	}
	prev, ok := g.history.Pop()
	if !ok {
		g.addEvent("Can not move back")
		return false
	}

	g.board.Replace(prev)
	g.board.refreshBuckets()
	g.logger.Debug("undo", "game", g.id, "history", g.history.Depth())
	return true
}

// ForceSpawn places a tile of the given value on a random empty cell.
// It is a debugging aid; hosts bind it to a 2048 tile.
func (g *Game) ForceSpawn(value uint64) bool {
	if g.state != StateInGame {
		return false
	}
	ok := g.spawnTile(value)
	g.board.refreshBuckets()
	g.evaluate()
	return ok
}

// ID returns the identifier of the current game, empty before the first NewGame.
func (g *Game) ID() string {
	if g.id == uuid.Nil {
		return ""
	}
	return g.id.String()
}

// Board returns a copy of the board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Cells returns every cell in row-major order.
func (g *Game) Cells() []Cell {
	return g.board.Cells()
}

// Size returns the board dimension.
func (g *Game) Size() int {
	return g.board.Size()
}

// Score returns the current score.
func (g *Game) Score() uint64 {
	return g.score.Value()
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Events returns the event log, most recent last.
func (g *Game) Events() []string {
	return g.events.Messages()
}

// HistoryDepth returns how many undo steps are available.
func (g *Game) HistoryDepth() int {
	return g.history.Depth()
}

// Moves returns the number of moves that changed the board this game.
func (g *Game) Moves() int {
	return g.moves
}
