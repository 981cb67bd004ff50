package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPosition is the cause of every out-of-range board access.
var ErrInvalidPosition = errors.New("t2048: invalid position")

// PositionError reports an access outside the board. Board accessors panic
// with it: addressing a missing cell is a programming error.
type PositionError struct {
	Row, Col int
	Size     int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("t2048: position (%d, %d) outside %dx%d board", e.Row, e.Col, e.Size, e.Size)
}

func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

// Board is a square grid of cells stored row-major in a single slice.
// Cells are addressed by (row, col) only; nothing holds a reference to them.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) *Board {
	if size < 0 {
		panic(fmt.Sprintf("t2048: negative board size %d", size))
	}
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i].Row = i / size
		cells[i].Col = i % size
	}
	return &Board{size: size, cells: cells}
}

// BoardFromValues builds a board from rows of tile values.
func BoardFromValues(values [][]uint64) (*Board, error) {
	b := NewBoard(len(values))
	for row, line := range values {
		if len(line) != len(values) {
			return nil, fmt.Errorf("t2048: row %d has %d values, want %d", row, len(line), len(values))
		}
		for col, v := range line {
			c := b.at(row, col)
			c.Value = v
			c.refreshBucket()
		}
	}
	return b, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

func (b *Board) index(row, col int) int {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		panic(&PositionError{Row: row, Col: col, Size: b.size})
	}
	return row*b.size + col
}

func (b *Board) at(row, col int) *Cell {
	return &b.cells[b.index(row, col)]
}

// Get returns a copy of the cell at (row, col).
func (b *Board) Get(row, col int) Cell {
	return *b.at(row, col)
}

// Set stores c at (row, col). The stored cell always carries the
// addressed coordinates, whatever c.Row and c.Col say.
func (b *Board) Set(row, col int, c Cell) {
	i := b.index(row, col)
	c.Row, c.Col = row, col
	b.cells[i] = c
}

// EmptyPositions lists every empty cell in row-major order.
func (b *Board) EmptyPositions() []Position {
	var empty []Position
	for _, c := range b.cells {
		if c.IsEmpty() {
			empty = append(empty, c.Position())
		}
	}
	return empty
}

// IsFull reports whether no empty cell is left.
func (b *Board) IsFull() bool {
	return len(b.EmptyPositions()) == 0
}

// Rows returns a copy of the board, one slice per row.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.size)
	for row := 0; row < b.size; row++ {
		rows[row] = make([]Cell, b.size)
		copy(rows[row], b.cells[row*b.size:(row+1)*b.size])
	}
	return rows
}

// Cells returns a row-major copy of every cell.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Values returns the tile values as rows.
func (b *Board) Values() [][]uint64 {
	values := make([][]uint64, b.size)
	for row := 0; row < b.size; row++ {
		values[row] = make([]uint64, b.size)
		for col := 0; col < b.size; col++ {
			values[row][col] = b.cells[row*b.size+col].Value
		}
	}
	return values
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Replace swaps in the whole grid of other. The receiver gets its own copy,
// so later changes to other are not visible through b.
func (b *Board) Replace(other *Board) {
	*b = *other.Clone()
}

// Equal reports whether both boards have the same size and tile values.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i].Value != other.cells[i].Value {
			return false
		}
	}
	return true
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() uint64 {
	var maxVal uint64
	for _, c := range b.cells {
		if c.Value > maxVal {
			maxVal = c.Value
		}
	}
	return maxVal
}

// HasValue reports whether any cell holds exactly v.
func (b *Board) HasValue(v uint64) bool {
	for _, c := range b.cells {
		if c.Value == v {
			return true
		}
	}
	return false
}

// HasPossibleMerge reports whether two neighbouring cells hold the same
// value. Only right and bottom neighbours are compared; adjacency is symmetric.
func (b *Board) HasPossibleMerge() bool {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			val := b.cells[row*b.size+col].Value
			if col+1 < b.size && b.cells[row*b.size+col+1].Value == val {
				return true
			}
			if row+1 < b.size && b.cells[(row+1)*b.size+col].Value == val {
				return true
			}
		}
	}
	return false
}

func (b *Board) refreshBuckets() {
	for i := range b.cells {
		b.cells[i].refreshBucket()
	}
}

// String renders the values as a space-separated grid.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", b.cells[row*b.size+col].Value)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
