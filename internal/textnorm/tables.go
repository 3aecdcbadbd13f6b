package textnorm

// Tables holds the substitution and removal sets consulted during
// normalization. A Tables value is immutable once handed to NewNormalizer.
type Tables struct {
	// Symbols maps fancy punctuation and non-standard space code points to
	// their plain-ASCII replacements.
	Symbols map[rune]string
	// ZeroWidth lists format characters removed and tallied as zero-width.
	// Any other stripped control character counts toward ControlsRemoved.
	ZeroWidth map[rune]bool
}

// DefaultTables returns the substitution tables used in production. The
// returned maps are fresh copies, safe for callers to extend in tests.
func DefaultTables() Tables {
	symbols := map[rune]string{
		// quotes
		'“': `"`, '”': `"`, '„': `"`, '‟': `"`,
		'«': `"`, '»': `"`,
		'‘': "'", '’': "'", '‚': "'", '‹': "'", '›': "'",
		// dashes
		'–': "-", '—': "-", '―': "-",
		// ellipsis
		'…': "...",
		// bullets
		'•': "*", '·': "*", '‧': "*", '▪': "*", '◦': "*",
		// arrows
		'→': "->", '←': "<-", '↔': "<->", '⇒': "=>", '⇐': "<=",
		// non-standard spaces
		'\u00a0': " ", // no-break space
		'\u2000': " ", '\u2001': " ", '\u2002': " ", '\u2003': " ",
		'\u2004': " ", '\u2005': " ", '\u2006': " ", '\u2007': " ",
		'\u2008': " ",
		'\u2009': " ", // thin space
		'\u200a': " ", // hair space
		'\u202f': " ", // narrow no-break space
		'\u205f': " ",
		'\u1680': " ",
		'\u180e': " ", // Mongolian vowel separator, legacy space mapping
		'\u3000': " ", // ideographic space
	}
	zeroWidth := map[rune]bool{
		'\u200b': true, // zero width space
		'\u200c': true, // zero width non-joiner
		'\u200d': true, // zero width joiner
		'\u2060': true, // word joiner
		'\u180e': true, // Mongolian vowel separator (deprecated)
		'\ufeff': true, // zero width no-break space / BOM
	}
	return Tables{Symbols: symbols, ZeroWidth: zeroWidth}
}
