package t2048

// History keeps the most recent board snapshots for undo.
// It is a ring buffer: pushing at capacity drops the oldest snapshot.
type History struct {
	snapshots []*Board
	head      int // index of the oldest snapshot
	size      int
}

// NewHistory creates a history holding up to capacity snapshots.
// A capacity of zero keeps nothing.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{snapshots: make([]*Board, capacity)}
}

// Push stores a deep copy of b.
func (h *History) Push(b *Board) {
	capacity := len(h.snapshots)
	if capacity == 0 {
		return
	}

	snap := b.Clone()
	if h.size == capacity {
		h.snapshots[h.head] = snap
		h.head = (h.head + 1) % capacity
		return
	}
	h.snapshots[(h.head+h.size)%capacity] = snap
	h.size++
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (*Board, bool) {
	if h.size == 0 {
		return nil, false
	}
	i := (h.head + h.size - 1) % len(h.snapshots)
	snap := h.snapshots[i]
	h.snapshots[i] = nil
	h.size--
	return snap, true
}

// Depth returns the number of stored snapshots.
func (h *History) Depth() int {
	return h.size
}

// Capacity returns the maximum number of snapshots kept.
func (h *History) Capacity() int {
	return len(h.snapshots)
}

// Clear drops every snapshot.
func (h *History) Clear() {
	for i := range h.snapshots {
		h.snapshots[i] = nil
	}
	h.head = 0
	h.size = 0
}
