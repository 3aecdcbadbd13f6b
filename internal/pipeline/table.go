package pipeline

import (
	"cutclean/internal/lineio"
	"cutclean/internal/tsvutil"
)

// RowDecision is a row handler's verdict for one table row.
type RowDecision int

const (
	// RowKeep writes the (possibly modified) row to the output.
	RowKeep RowDecision = iota
	// RowDrop discards the row.
	RowDrop
	// RowSkip marks a row the operation could not apply to, usually one too
	// short to hold the path column. TableOptions decides whether it is
	// passed through or dropped; either way it is counted as skipped.
	RowSkip
)

// TableOptions configures one table pass.
type TableOptions struct {
	// WriteSkipped passes skipped rows through unchanged, for non-destructive
	// operations. Filtering operations leave it false and drop them.
	WriteSkipped bool
}

// TableCounts reports a table pass.
type TableCounts struct {
	Kept         int
	Dropped      int
	Skipped      int
	DecodeErrors int
}

// RowFunc inspects one row and decides its fate. It may modify the row in
// place before returning RowKeep. lineNum is 1-based.
type RowFunc func(lineNum int, row tsvutil.Row) (tsvutil.Row, RowDecision)

// ProcessTable streams every row of src through fn, writing surviving rows to
// dst. A nil dst counts without writing. Undecodable lines are counted and
// skipped like manifest lines.
func ProcessTable(src *lineio.Source, dst *lineio.Writer, opts TableOptions, fn RowFunc) (TableCounts, error) {
	var counts TableCounts
	writeRow := func(row tsvutil.Row) error {
		if dst == nil {
			return nil
		}
		return dst.WriteLine(row.Encode())
	}

	for src.Scan() {
		if src.DecodeErr() != nil {
			counts.DecodeErrors++
			continue
		}
		row := tsvutil.ParseRow(src.Text())

		out, decision := fn(src.LineNumber(), row)
		switch decision {
		case RowKeep:
			if err := writeRow(out); err != nil {
				return counts, err
			}
			counts.Kept++
		case RowDrop:
			counts.Dropped++
		case RowSkip:
			counts.Skipped++
			if opts.WriteSkipped {
				if err := writeRow(row); err != nil {
					return counts, err
				}
			}
		}
	}
	return counts, src.Err()
}
