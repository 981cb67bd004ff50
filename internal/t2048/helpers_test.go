package t2048

import (
	"math/rand"
	"testing"
)

func mustBoard(t *testing.T, values [][]uint64) *Board {
	t.Helper()
	b, err := BoardFromValues(values)
	if err != nil {
		t.Fatalf("BoardFromValues: %v", err)
	}
	return b
}

// randomBoard fills roughly half of an n×n board with small powers of two.
func randomBoard(rng *rand.Rand, n int) *Board {
	b := NewBoard(n)
	for i := range b.cells {
		if rng.Intn(2) == 0 {
			continue
		}
		b.cells[i].Value = 1 << (1 + rng.Intn(4))
		b.cells[i].refreshBucket()
	}
	return b
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// loadBoard puts values onto a running game and clears its history.
func loadBoard(t *testing.T, g *Game, values [][]uint64) {
	t.Helper()
	g.board = mustBoard(t, values)
	g.history.Clear()
}
