package t2048

// Score is the running total of spawned tiles and merge results.
// It only grows; a new game starts a new Score.
type Score struct {
	value uint64
}

// Increment adds amount to the score. A nil score discards it.
func (s *Score) Increment(amount uint64) {
	if s == nil {
		return
	}
	s.value += amount
}

// Value returns the current total.
func (s *Score) Value() uint64 {
	if s == nil {
		return 0
	}
	return s.value
}
