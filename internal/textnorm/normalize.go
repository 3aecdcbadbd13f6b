package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	horizontalRuns    = regexp.MustCompile(`[ \t\f\v]+`)
	spacedNewlines    = regexp.MustCompile(`[ \t\f\v]*\n[ \t\f\v]*`)
	stackedNewlines   = regexp.MustCompile(`\n{3,}`)
	preservedControls = map[rune]bool{'\t': true, '\n': true, '\r': true, '\f': true, '\v': true}
)

// Normalizer applies the five-stage cleanup with a fixed Tables value.
type Normalizer struct {
	tables Tables
}

// NewNormalizer builds a Normalizer around the given tables.
func NewNormalizer(tables Tables) *Normalizer {
	return &Normalizer{tables: tables}
}

// Default returns a Normalizer using DefaultTables.
func Default() *Normalizer {
	return NewNormalizer(DefaultTables())
}

// Normalize cleans s and reports what changed. The transformation is pure and
// deterministic; calling it on its own output is a no-op.
func (n *Normalizer) Normalize(s string) (string, Stats) {
	var stats Stats

	// Stage 1: NFKC recomposition.
	before := s
	s = norm.NFKC.String(s)
	if s != before {
		stats.NFKCChanges += runeDelta(before, s)
	}

	// Stage 2: symbol and odd-space substitution. NBSP occurrences are counted
	// against the stage input, before they disappear into plain spaces.
	stats.NBSpaceToSpace += strings.Count(s, " ")
	s, stats.ReplacedPunct = n.substituteSymbols(s)

	// Stage 3: strip controls and zero-width format characters.
	var zw, ctrl int
	s, zw, ctrl = n.dropControls(s)
	stats.ZeroWidthRemoved += zw
	stats.ControlsRemoved += ctrl

	// Stage 4: whitespace normalization. One flag increment per invocation
	// that changed anything, not one per run collapsed.
	before = s
	s = horizontalRuns.ReplaceAllString(s, " ")
	s = spacedNewlines.ReplaceAllString(s, "\n")
	s = stackedNewlines.ReplaceAllString(s, "\n\n")
	if s != before {
		stats.WhitespaceCollapsed++
	}

	// Stage 5: outer trim, flagged the same way.
	trimmed := strings.TrimSpace(s)
	if trimmed != s {
		stats.WhitespaceCollapsed++
		s = trimmed
	}

	return s, stats
}

func (n *Normalizer) substituteSymbols(s string) (string, int) {
	replaced := 0
	var b strings.Builder
	for _, r := range s {
		if sub, ok := n.tables.Symbols[r]; ok {
			b.WriteString(sub)
			replaced++
			continue
		}
		b.WriteRune(r)
	}
	if replaced == 0 {
		return s, 0
	}
	return b.String(), replaced
}

func (n *Normalizer) dropControls(s string) (out string, zeroWidth, controls int) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case n.tables.ZeroWidth[r]:
			zeroWidth++
		case removableControl(r):
			controls++
		default:
			b.WriteRune(r)
		}
	}
	if zeroWidth == 0 && controls == 0 {
		return s, 0, 0
	}
	return b.String(), zeroWidth, controls
}

// removableControl reports whether r is a C0/C1 control or DEL, excluding the
// whitespace controls preserved for the whitespace stage.
func removableControl(r rune) bool {
	if preservedControls[r] {
		return false
	}
	return r < 0x20 || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

// runeDelta approximates how many code points NFKC changed: positionwise
// mismatches over the shorter string plus the length difference.
func runeDelta(before, after string) int {
	a := []rune(before)
	b := []rune(after)
	shorter := len(a)
	if len(b) < shorter {
		shorter = len(b)
	}
	changed := 0
	for i := 0; i < shorter; i++ {
		if a[i] != b[i] {
			changed++
		}
	}
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	return changed + diff
}
