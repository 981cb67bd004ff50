package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// WinValue is the tile that wins the game.
const WinValue uint64 = 2048

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name or its first letter, in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// delta is one step toward the wall the tiles slide to.
func (d Direction) delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// scanOrder visits cells nearest the target wall first, line by line.
func scanOrder(size int, dir Direction) []Position {
	order := make([]Position, 0, size*size)
	for line := 0; line < size; line++ {
		for i := 0; i < size; i++ {
			var p Position
			switch dir {
			case DirLeft:
				p = Position{Row: line, Col: i}
			case DirRight:
				p = Position{Row: line, Col: size - 1 - i}
			case DirUp:
				p = Position{Row: i, Col: line}
			case DirDown:
				p = Position{Row: size - 1 - i, Col: line}
			}
			order = append(order, p)
		}
	}
	return order
}

// slide moves every tile toward dir one cell at a time. A tile keeps going
// through empty cells, merges into an equal neighbour and stops, or stops at
// anything else. A cell that received a merge this move takes no second one.
func slide(b *Board, s *Score, dir Direction) bool {
	dRow, dCol := dir.delta()
	if dRow == 0 && dCol == 0 {
		return false
	}

	merged := make([]bool, len(b.cells))
	moved := false

	for _, p := range scanOrder(b.size, dir) {
		row, col := p.Row, p.Col
		if b.at(row, col).IsEmpty() {
			continue
		}

		for {
			nextRow, nextCol := row+dRow, col+dCol
			if nextRow < 0 || nextRow >= b.size || nextCol < 0 || nextCol >= b.size {
				break
			}

			src, dst := b.at(row, col), b.at(nextRow, nextCol)
			if dst.IsEmpty() {
				dst.devour(src)
				src.reset()
				moved = true
				row, col = nextRow, nextCol
				continue
			}

			target := b.index(nextRow, nextCol)
			if dst.Value == src.Value && !merged[target] {
				s.Increment(dst.accumulate(src))
				src.reset()
				merged[target] = true
				moved = true
			}
			break
		}
	}

	return moved
}

// SlideLeft slides all tiles left and merges. Reports whether anything moved.
func SlideLeft(b *Board, s *Score) bool {
	return slide(b, s, DirLeft)
}

// SlideRight slides all tiles right and merges.
func SlideRight(b *Board, s *Score) bool {
	return slide(b, s, DirRight)
}

// SlideUp slides all tiles up and merges.
func SlideUp(b *Board, s *Score) bool {
	return slide(b, s, DirUp)
}

// SlideDown slides all tiles down and merges.
func SlideDown(b *Board, s *Score) bool {
	return slide(b, s, DirDown)
}

// Slide performs a move in the given direction, mutating b in place and
// adding merge results to s. Unknown directions change nothing.
func Slide(b *Board, s *Score, dir Direction) bool {
	switch dir {
	case DirLeft:
		return SlideLeft(b, s)
	case DirRight:
		return SlideRight(b, s)
	case DirUp:
		return SlideUp(b, s)
	case DirDown:
		return SlideDown(b, s)
	default:
		return false
	}
}

// CanMove returns true if any move is possible.
func CanMove(b *Board) bool {
	return !b.IsFull() || b.HasPossibleMerge()
}

// IsGameOver returns true if the board is full and no neighbours match.
func IsGameOver(b *Board) bool {
	return !CanMove(b)
}

// HasWinningTile reports whether the winning tile is on the board.
func HasWinningTile(b *Board) bool {
	return b.HasValue(WinValue)
}
