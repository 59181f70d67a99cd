package model

// historySize is the number of recent generations kept for cycle detection
const historySize = 5

// History remembers the hashes of recent snapshots so a driver can tell when a
// board has settled into a still life or a period-2 oscillation.
type History struct {
	hashes []string
}

// NewHistory returns an empty History
func NewHistory() *History {
	return &History{}
}

// Record adds a snapshot to the history, keeping only the most recent ones
func (h *History) Record(s Snapshot) {
	h.hashes = append(h.hashes, s.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of recorded snapshots
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether s repeats one of the last two recorded states
func (h *History) IsStagnant(s Snapshot) bool {
	current := s.Hash()
	n := len(h.hashes)
	if n > 0 && h.hashes[n-1] == current {
		return true
	}
	if n > 1 && h.hashes[n-2] == current {
		return true
	}
	return false
}
