package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
)

func tileSum(b *Board) uint64 {
	var sum uint64
	for _, c := range b.Cells() {
		sum += c.Value
	}
	return sum
}

func TestNewGame(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	g := newTestGame(t, opts)

	if g.State() != StateInitialized {
		t.Fatalf("State() = %q before NewGame", g.State())
	}
	if g.ID() != "" {
		t.Errorf("ID() = %q before NewGame", g.ID())
	}

	g.NewGame()

	if g.State() != StateInGame {
		t.Errorf("State() = %q, want %q", g.State(), StateInGame)
	}
	if g.ID() == "" {
		t.Error("ID() empty after NewGame")
	}
	tiles := 16 - len(g.Board().EmptyPositions())
	if tiles < 1 || tiles > 2 {
		t.Errorf("NewGame spawned %d tiles, want 1 or 2", tiles)
	}
	if g.Score() != tileSum(g.Board()) {
		t.Errorf("Score() = %d, want spawned sum %d", g.Score(), tileSum(g.Board()))
	}
	if g.HistoryDepth() != 0 {
		t.Errorf("HistoryDepth() = %d, want 0", g.HistoryDepth())
	}

	events := g.Events()
	if len(events) < 2 || events[0] != "NEW GAME" {
		t.Fatalf("Events() = %v", events)
	}
	if !strings.HasPrefix(events[1], "Added cell with value: 2, row = ") {
		t.Errorf("first spawn event = %q", events[1])
	}
}

func TestNewGameChangesID(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	first := g.ID()
	g.NewGame()
	if g.ID() == first {
		t.Error("NewGame reused the game ID")
	}
}

func TestApplyMoveLeft(t *testing.T) {
	opts := DefaultOptions()
	opts.BonusProbability = 0
	g := newTestGame(t, opts)
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	scoreBefore := g.Score()

	if !g.ApplyMove(DirLeft) {
		t.Fatal("ApplyMove(DirLeft) reported no movement")
	}

	b := g.Board()
	if got := b.Get(0, 0); got.Value != 2 || got.Bucket != Bucket2 {
		t.Errorf("(0, 0) = %+v, want the moved 2", got)
	}
	if got := 16 - len(b.EmptyPositions()); got != 2 {
		t.Errorf("%d tiles after move, want 2", got)
	}
	if g.Score() != scoreBefore+2 {
		t.Errorf("Score() = %d, want %d", g.Score(), scoreBefore+2)
	}
	if g.HistoryDepth() != 1 {
		t.Errorf("HistoryDepth() = %d, want 1", g.HistoryDepth())
	}
	if g.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", g.Moves())
	}
}

func TestApplyMoveMergeScenario(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	scoreBefore := g.Score()

	if !g.ApplyMove(DirLeft) {
		t.Fatal("ApplyMove(DirLeft) reported no movement")
	}

	b := g.Board()
	if got := b.Get(0, 0).Value; got != 4 {
		t.Errorf("(0, 0) = %d, want 4", got)
	}
	spawned := tileSum(b) - 4
	if spawned != 2 && spawned != 6 {
		t.Errorf("spawned tiles sum to %d, want 2 or 2+4", spawned)
	}
	if g.Score() != scoreBefore+4+spawned {
		t.Errorf("Score() = %d, want %d", g.Score(), scoreBefore+4+spawned)
	}
}

func TestApplyMoveNoOpSnapshots(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	events := len(g.Events())

	if g.ApplyMove(DirLeft) {
		t.Error("ApplyMove into the wall reported movement")
	}
	if g.HistoryDepth() != 1 {
		t.Errorf("HistoryDepth() = %d, want 1", g.HistoryDepth())
	}
	if len(g.Events()) != events {
		t.Error("no-op move spawned a tile")
	}
}

func TestWin(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if !g.ApplyMove(DirLeft) {
		t.Fatal("winning move reported no movement")
	}
	if g.State() != StateWon {
		t.Fatalf("State() = %q, want %q", g.State(), StateWon)
	}
	events := g.Events()
	if events[len(events)-1] != "You won!" {
		t.Errorf("last event = %q", events[len(events)-1])
	}
	if g.Board().Get(0, 0).Bucket != Bucket2048 {
		t.Error("winning tile has wrong bucket")
	}

	before := g.Board()
	if g.ApplyMove(DirRight) {
		t.Error("ApplyMove accepted after win")
	}
	if !g.Board().Equal(before) {
		t.Error("board changed after win")
	}
}

func TestMoveIntoLockedBoardIsGameOver(t *testing.T) {
	opts := DefaultOptions()
	opts.Size = 2
	opts.BonusProbability = 0
	g := newTestGame(t, opts)
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{2, 4},
		{0, 8},
	})

	if !g.ApplyMove(DirLeft) {
		t.Fatal("ApplyMove(DirLeft) reported no movement")
	}
	// The spawned 2 lands on (1, 1), the only empty cell.
	if got := g.Board().Values(); got[1][0] != 8 || got[1][1] != 2 {
		t.Fatalf("board = %v", got)
	}
	if g.State() != StateGameOver {
		t.Fatalf("State() = %q, want %q", g.State(), StateGameOver)
	}
	events := g.Events()
	if events[len(events)-1] != "Game over" {
		t.Errorf("last event = %q", events[len(events)-1])
	}
	if g.ApplyMove(DirUp) {
		t.Error("ApplyMove accepted after game over")
	}
}

func TestCheckGameOver(t *testing.T) {
	tests := []struct {
		name  string
		board [][]uint64
		want  bool
	}{
		{
			name:  "checkerboard",
			board: [][]uint64{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}},
			want:  true,
		},
		{
			name:  "full with pair",
			board: [][]uint64{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 4}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, DefaultOptions())
			g.NewGame()
			loadBoard(t, g, tt.board)

			if got := g.CheckGameOver(); got != tt.want {
				t.Errorf("CheckGameOver() = %v, want %v", got, tt.want)
			}
			wantState := StateInGame
			if tt.want {
				wantState = StateGameOver
			}
			if g.State() != wantState {
				t.Errorf("State() = %q, want %q", g.State(), wantState)
			}
		})
	}
}

func TestChecksIgnoredOutsideGame(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.board = mustBoard(t, [][]uint64{{2048, 4}, {8, 16}})

	if g.CheckGameWon() || g.CheckGameOver() {
		t.Error("checks acted before NewGame")
	}
	if g.ApplyMove(DirLeft) {
		t.Error("ApplyMove acted before NewGame")
	}
	if g.ForceSpawn(2) {
		t.Error("ForceSpawn acted before NewGame")
	}
	if g.State() != StateInitialized {
		t.Errorf("State() = %q", g.State())
	}
}

func TestUndoDepth(t *testing.T) {
	const depth = 3
	opts := DefaultOptions()
	opts.HistoryDepth = depth
	g := newTestGame(t, opts)
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	for i := 0; i < depth+1; i++ {
		g.ApplyMove(DirLeft)
	}
	if g.HistoryDepth() != depth {
		t.Fatalf("HistoryDepth() = %d, want %d", g.HistoryDepth(), depth)
	}

	for i := 0; i < depth; i++ {
		if !g.Undo() {
			t.Fatalf("Undo() #%d failed", i+1)
		}
	}
	if g.Undo() {
		t.Error("Undo() succeeded with empty history")
	}
	events := g.Events()
	if events[len(events)-1] != "Can not move back" {
		t.Errorf("last event = %q", events[len(events)-1])
	}
}

func TestUndoRestoresBoardNotScore(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := g.Board()

	g.ApplyMove(DirRight)
	scoreAfterMove := g.Score()

	if !g.Undo() {
		t.Fatal("Undo() failed")
	}
	if !g.Board().Equal(before) {
		t.Errorf("board after undo =\n%vwant\n%v", g.Board(), before)
	}
	if g.Score() != scoreAfterMove {
		t.Errorf("Score() = %d after undo, want %d", g.Score(), scoreAfterMove)
	}
	if got := g.Board().Get(0, 0).Bucket; got != Bucket2 {
		t.Errorf("bucket after undo = %v, want %v", got, Bucket2)
	}
}

func TestUndoDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.HistoryDepth = 0
	g := newTestGame(t, opts)
	g.NewGame()
	g.ApplyMove(DirLeft)
	g.ApplyMove(DirRight)
	if g.Undo() {
		t.Error("Undo() succeeded with history disabled")
	}
}

func TestForceSpawnWinsOnLockedBoard(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	})

	if !g.ForceSpawn(WinValue) {
		t.Fatal("ForceSpawn() failed")
	}
	if !g.Board().IsFull() {
		t.Fatal("board not full after spawn")
	}
	if g.State() != StateWon {
		t.Errorf("State() = %q, want %q", g.State(), StateWon)
	}
}

func TestForceSpawnFullBoard(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{2, 2, 2, 2},
		{2, 2, 2, 2},
		{2, 2, 2, 2},
		{2, 2, 2, 2},
	})
	if g.ForceSpawn(4) {
		t.Error("ForceSpawn() succeeded on a full board")
	}
	if g.State() != StateInGame {
		t.Errorf("State() = %q, want %q", g.State(), StateInGame)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	moves := []Direction{DirLeft, DirUp, DirRight, DirDown, DirLeft, DirLeft, DirUp, DirRight}

	play := func() Snapshot {
		opts := DefaultOptions()
		opts.Seed = 12345
		g := newTestGame(t, opts)
		g.NewGame()
		for _, d := range moves {
			g.ApplyMove(d)
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if a.Score != b.Score || a.Moves != b.Moves || a.State != b.State {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
	for row := range a.Board {
		for col := range a.Board[row] {
			if a.Board[row][col] != b.Board[row][col] {
				t.Fatalf("boards diverged at (%d, %d)", row, col)
			}
		}
	}
}

func TestZeroSizeBoard(t *testing.T) {
	opts := DefaultOptions()
	opts.Size = 0
	g := newTestGame(t, opts)
	g.NewGame()

	if g.State() != StateInGame {
		t.Errorf("State() = %q, want %q", g.State(), StateInGame)
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
	if g.ApplyMove(DirLeft) {
		t.Error("move on empty board reported movement")
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"negative size", func(o *Options) { o.Size = -1 }},
		{"negative history", func(o *Options) { o.HistoryDepth = -2 }},
		{"probability above one", func(o *Options) { o.BonusProbability = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			if _, err := New(opts); err == nil {
				t.Error("New() accepted invalid options")
			}
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	loadBoard(t, g, [][]uint64{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1 << 21},
	})
	g.score = Score{value: 4242}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"2048", "Score: 4242", "128", "2^21", "NEW GAME"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}
}

func TestRenderOverlay(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	g.NewGame()
	loadBoard(t, g, [][]uint64{{2, 4, 2, 4}, {4, 2, 4, 2}, {2, 4, 2, 4}, {4, 2, 4, 2}})
	g.CheckGameOver()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("expected game over overlay:\n%s", screen.String())
	}
}
