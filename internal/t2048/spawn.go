package t2048

import "math/rand"

// Spawn puts value on a uniformly chosen empty cell and adds it to the score.
// It returns false without touching the board when no cell is empty.
func Spawn(b *Board, s *Score, rng *rand.Rand, value uint64) (Position, bool) {
	empty := b.EmptyPositions()
	if len(empty) == 0 {
		return Position{}, false
	}

	p := empty[rng.Intn(len(empty))]
	c := b.at(p.Row, p.Col)
	c.Value = value
	c.refreshBucket()
	s.Increment(value)

	return p, true
}

// spawnTile places one tile and records it in the event log.
func (g *Game) spawnTile(value uint64) bool {
	p, ok := Spawn(g.board, &g.score, g.rng, value)
	if !ok {
		g.logger.Debug("no room to spawn", "game", g.id, "value", value)
		return false
	}
	g.addEvent("Added cell with value: %d, row = %d col = %d", value, p.Row, p.Col)
	return true
}

// spawnTurnTiles adds the base tile and, with the configured odds, a bonus
// tile. The bonus silently fails when the base tile took the last cell.
func (g *Game) spawnTurnTiles() bool {
	ok := g.spawnTile(g.opts.BaseValue)
	if g.rng.Float64() < g.opts.BonusProbability {
		g.spawnTile(g.opts.BonusValue)
	}
	return ok
}
