package stats

import (
	"fmt"
	"io"

	"cutclean/internal/render"
)

// Render writes the run summary to w. With pretty set the histograms come out
// as rounded tables; otherwise as stable tab-separated lines. Either way the
// output is byte-identical for a given aggregator state.
func (a *Aggregator) Render(w io.Writer, pretty bool) {
	fmt.Fprintln(w, "=== Sampling Rates ===")
	if pretty {
		rows := make([][]string, 0)
		for _, rate := range a.SamplingRates() {
			rows = append(rows, []string{fmt.Sprintf("%d", rate), fmt.Sprintf("%d", a.SamplingRateCount(rate))})
		}
		fmt.Fprintln(w, renderHistogram("Rate", rows))
	} else {
		for _, rate := range a.SamplingRates() {
			fmt.Fprintf(w, "%d\t%d\n", rate, a.SamplingRateCount(rate))
		}
	}

	fmt.Fprintln(w, "\n=== Channels ===")
	if pretty {
		rows := make([][]string, 0)
		for _, ch := range a.Channels() {
			rows = append(rows, []string{FormatChannelKey(ch.Key), fmt.Sprintf("%d", ch.Count)})
		}
		fmt.Fprintln(w, renderHistogram("Channel", rows))
	} else {
		for _, ch := range a.Channels() {
			fmt.Fprintf(w, "%s\t%d\n", FormatChannelKey(ch.Key), ch.Count)
		}
	}

	fmt.Fprintln(w, "\n=== Text Cleanup ===")
	fmt.Fprintf(w, "Lines with UTF-8 decode errors (skipped): %d\n", a.DecodeErrors)
	fmt.Fprintf(w, "Lines with malformed records (skipped):   %d\n", a.Malformed)
	fmt.Fprintf(w, "Records with normalized text:             %d\n", a.NormalizedRecords)
	if !a.Norm.IsZero() {
		fmt.Fprintln(w, "  Character-level changes:")
		fmt.Fprintf(w, "    nkfc_changes:         %d\n", a.Norm.NFKCChanges)
		fmt.Fprintf(w, "    replaced_punct:       %d\n", a.Norm.ReplacedPunct)
		fmt.Fprintf(w, "    nbspace_to_space:     %d\n", a.Norm.NBSpaceToSpace)
		fmt.Fprintf(w, "    zero_width_removed:   %d\n", a.Norm.ZeroWidthRemoved)
		fmt.Fprintf(w, "    controls_removed:     %d\n", a.Norm.ControlsRemoved)
		fmt.Fprintf(w, "    whitespace_norm_ops:  %d\n", a.Norm.WhitespaceCollapsed)
	}
	fmt.Fprintf(w, "Records with empty text after cleanup:    %d\n", a.EmptyTextAfterNorm)

	fmt.Fprintln(w, "\n=== Outcome ===")
	fmt.Fprintf(w, "total=%d kept=%d dropped=%d\n", a.Total, a.Kept, a.Dropped())
	if a.TooShortDuration > 0 {
		fmt.Fprintf(w, "  dropped for duration:         %d\n", a.TooShortDuration)
	}
	if a.EmptyTextDropped > 0 {
		fmt.Fprintf(w, "  dropped for empty text:       %d\n", a.EmptyTextDropped)
	}
	if a.RateMismatch > 0 {
		fmt.Fprintf(w, "  dropped for sampling rate:    %d\n", a.RateMismatch)
	}
	if a.ChannelMismatch > 0 {
		fmt.Fprintf(w, "  dropped for channel mismatch: %d\n", a.ChannelMismatch)
	}
}

func renderHistogram(label string, rows [][]string) string {
	return render.Table([]string{label, "Count"}, rows, 1)
}
