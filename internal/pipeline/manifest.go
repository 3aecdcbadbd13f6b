package pipeline

import (
	"errors"
	"strings"

	"cutclean/internal/lineio"
	"cutclean/internal/manifest"
	"cutclean/internal/stats"
	"cutclean/internal/textnorm"
)

// ManifestOptions configures one manifest pass.
type ManifestOptions struct {
	Criteria manifest.Criteria
	// Normalizer cleans supervision texts before filtering. Nil disables the
	// cleanup stage.
	Normalizer *textnorm.Normalizer
}

// ProcessManifest streams every line of src through decode, normalization,
// and filtering. Kept records are written to dst; a nil dst turns the pass
// into a counting-only run. Returns the number of kept records.
func ProcessManifest(src *lineio.Source, dst *lineio.Writer, opts ManifestOptions, agg *stats.Aggregator) (int, error) {
	kept := 0
	for src.Scan() {
		if src.DecodeErr() != nil {
			agg.ObserveDecodeError()
			continue
		}
		line := strings.TrimSpace(src.Text())
		if line == "" {
			continue
		}

		cut, err := manifest.Decode(line)
		if err != nil {
			if errors.Is(err, manifest.ErrMalformedRecord) {
				agg.ObserveMalformed()
				continue
			}
			return kept, err
		}
		agg.ObserveCut(cut)

		if opts.Normalizer != nil {
			normalizeTexts(cut, opts.Normalizer, agg)
		}
		if manifest.AllTextsEmpty(cut) {
			agg.ObserveEmptyText()
		}

		keep, reason := manifest.Keep(cut, opts.Criteria)
		if !keep {
			agg.ObserveRejection(reason)
			continue
		}

		if dst != nil {
			if err := dst.WriteLine(manifest.Encode(cut)); err != nil {
				return kept, err
			}
		}
		agg.ObserveKept()
		kept++
	}
	return kept, src.Err()
}

func normalizeTexts(cut *manifest.Cut, normalizer *textnorm.Normalizer, agg *stats.Aggregator) {
	var entryStats textnorm.Stats
	changed := false
	for _, sup := range cut.Supervisions() {
		text, ok := sup.Text()
		if !ok {
			continue
		}
		cleaned, st := normalizer.Normalize(text)
		entryStats = entryStats.Add(st)
		if cleaned != text {
			changed = true
			sup.SetText(cleaned)
		}
	}
	agg.ObserveNormalization(entryStats, changed)
}
