package textnorm

// Stats tallies the changes one or more Normalize calls made, one counter per
// change category. Counters are plain sums, so merging partial tallies with
// Add is associative and commutative.
type Stats struct {
	NFKCChanges         int
	ReplacedPunct       int
	NBSpaceToSpace      int
	ZeroWidthRemoved    int
	ControlsRemoved     int
	WhitespaceCollapsed int
}

// Add returns the field-wise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		NFKCChanges:         s.NFKCChanges + other.NFKCChanges,
		ReplacedPunct:       s.ReplacedPunct + other.ReplacedPunct,
		NBSpaceToSpace:      s.NBSpaceToSpace + other.NBSpaceToSpace,
		ZeroWidthRemoved:    s.ZeroWidthRemoved + other.ZeroWidthRemoved,
		ControlsRemoved:     s.ControlsRemoved + other.ControlsRemoved,
		WhitespaceCollapsed: s.WhitespaceCollapsed + other.WhitespaceCollapsed,
	}
}

// IsZero reports whether no counter recorded a change.
func (s Stats) IsZero() bool {
	return s == Stats{}
}
