package stats

import (
	"fmt"
	"sort"
	"strings"

	"cutclean/internal/manifest"
	"cutclean/internal/textnorm"
)

// Aggregator accumulates counters for one processing run. It is not safe for
// concurrent use; the pipeline is strictly sequential.
type Aggregator struct {
	Total              int
	Kept               int
	DecodeErrors       int
	Malformed          int
	NormalizedRecords  int
	EmptyTextAfterNorm int

	TooShortDuration int
	EmptyTextDropped int
	RateMismatch     int
	ChannelMismatch  int

	Norm textnorm.Stats

	samplingRates map[int]int
	channels      map[string]*channelBucket
}

type channelBucket struct {
	key   []int
	count int
}

// ChannelCount is one channel histogram entry in canonical list form.
type ChannelCount struct {
	Key   []int
	Count int
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		samplingRates: make(map[int]int),
		channels:      make(map[string]*channelBucket),
	}
}

// ObserveDecodeError counts one undecodable line.
func (a *Aggregator) ObserveDecodeError() {
	a.DecodeErrors++
}

// ObserveMalformed counts one line that decoded but did not parse.
func (a *Aggregator) ObserveMalformed() {
	a.Malformed++
}

// ObserveCut counts one well-formed record and updates the histograms. An
// absent channel contributes to the total but not to the channel histogram.
func (a *Aggregator) ObserveCut(cut *manifest.Cut) {
	a.Total++
	if rate, ok := cut.SamplingRate(); ok {
		a.samplingRates[rate]++
	}
	if key, ok := cut.Channel().Key(); ok {
		id := FormatChannelKey(key)
		bucket := a.channels[id]
		if bucket == nil {
			bucket = &channelBucket{key: append([]int(nil), key...)}
			a.channels[id] = bucket
		}
		bucket.count++
	}
}

// ObserveNormalization merges one record's normalization tally. Only records
// whose text actually changed count toward NormalizedRecords and the summed
// character stats, matching the per-run report semantics.
func (a *Aggregator) ObserveNormalization(st textnorm.Stats, changed bool) {
	if !changed {
		return
	}
	a.NormalizedRecords++
	a.Norm = a.Norm.Add(st)
}

// ObserveEmptyText counts a record whose supervision texts were all empty
// after normalization, regardless of whether the policy dropped it.
func (a *Aggregator) ObserveEmptyText() {
	a.EmptyTextAfterNorm++
}

// ObserveKept counts one record written to the output.
func (a *Aggregator) ObserveKept() {
	a.Kept++
}

// ObserveRejection attributes one dropped record to the rule that fired.
func (a *Aggregator) ObserveRejection(r manifest.Rejection) {
	switch r {
	case manifest.RejectDuration:
		a.TooShortDuration++
	case manifest.RejectEmptyText:
		a.EmptyTextDropped++
	case manifest.RejectSamplingRate:
		a.RateMismatch++
	case manifest.RejectChannel:
		a.ChannelMismatch++
	}
}

// Dropped returns the number of records rejected by any rule.
func (a *Aggregator) Dropped() int {
	return a.TooShortDuration + a.EmptyTextDropped + a.RateMismatch + a.ChannelMismatch
}

// SamplingRates returns the rate histogram keys in ascending numeric order.
func (a *Aggregator) SamplingRates() []int {
	keys := make([]int, 0, len(a.samplingRates))
	for k := range a.samplingRates {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// SamplingRateCount returns the count for one rate.
func (a *Aggregator) SamplingRateCount(rate int) int {
	return a.samplingRates[rate]
}

// Channels returns the channel histogram ordered by canonical list value
// (elementwise numeric, shorter lists first on shared prefixes).
func (a *Aggregator) Channels() []ChannelCount {
	out := make([]ChannelCount, 0, len(a.channels))
	for _, bucket := range a.channels {
		out = append(out, ChannelCount{Key: bucket.key, Count: bucket.count})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessChannelKey(out[i].Key, out[j].Key)
	})
	return out
}

// FormatChannelKey renders a canonical channel list as its histogram label.
func FormatChannelKey(key []int) string {
	parts := make([]string, len(key))
	for i, v := range key {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func lessChannelKey(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
