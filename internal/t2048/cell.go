package t2048

import "strconv"

// Position addresses a cell on the board.
type Position struct {
	Row int
	Col int
}

// Cell is a single board position. A zero Value means the cell is empty.
type Cell struct {
	Value  uint64
	Row    int
	Col    int
	Bucket Bucket // display key derived from Value
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c.Value == 0
}

// Position returns the cell's coordinates.
func (c Cell) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// String returns the tile value, or an empty string for an empty cell.
func (c Cell) String() string {
	if c.IsEmpty() {
		return ""
	}
	return strconv.FormatUint(c.Value, 10)
}

// devour moves src's tile into c.
func (c *Cell) devour(src *Cell) {
	c.Value = src.Value
	c.Bucket = src.Bucket
}

// accumulate adds src's value to c and returns the new total.
func (c *Cell) accumulate(src *Cell) uint64 {
	c.Value += src.Value
	return c.Value
}

func (c *Cell) reset() {
	c.Value = 0
}

func (c *Cell) refreshBucket() {
	c.Bucket = BucketFor(c.Value)
}
