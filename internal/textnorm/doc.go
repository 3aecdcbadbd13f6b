// Package textnorm cleans noisy Unicode in transcript text.
//
// Normalization runs five ordered stages: NFKC recomposition, a fixed
// symbol/space substitution table, control and zero-width character removal,
// horizontal whitespace collapsing, and an outer trim. Stage order is part of
// the contract; each stage feeds the next. Every call returns a Stats tally
// describing what changed, so callers can aggregate across a whole manifest
// without shared counters.
//
// The substitution and removal tables live in a Tables value injected at
// construction time. DefaultTables covers the punctuation, exotic spaces, and
// format characters seen in real speech-corpus transcripts; tests can supply
// alternates.
package textnorm
