package manifest

import "strings"

// Criteria configures the keep/drop decision for one record. Nil pointer and
// nil slice fields deactivate their rule.
type Criteria struct {
	// MinDuration rejects cuts whose duration is absent or strictly below it.
	MinDuration *float64
	// RequireAllSupervisions extends MinDuration to every supervision span.
	RequireAllSupervisions bool
	// DropEmptyText rejects cuts whose supervision texts are all empty or
	// missing after normalization.
	DropEmptyText bool
	// TargetSamplingRate rejects cuts whose recording.sampling_rate differs.
	TargetSamplingRate *int
	// TargetChannel rejects cuts whose raw channel value is not exactly this
	// list (value and order; a bare integer never matches).
	TargetChannel []int
}

// Rejection identifies which rule dropped a record.
type Rejection int

const (
	RejectNone Rejection = iota
	RejectDuration
	RejectEmptyText
	RejectSamplingRate
	RejectChannel
)

func (r Rejection) String() string {
	switch r {
	case RejectDuration:
		return "duration"
	case RejectEmptyText:
		return "empty-text"
	case RejectSamplingRate:
		return "sampling-rate"
	case RejectChannel:
		return "channel"
	default:
		return "none"
	}
}

// Keep evaluates the criteria against a well-formed cut. Rules apply in a
// fixed precedence (duration, empty text, sampling rate, channel) so the
// returned Rejection is deterministic when several rules would fire.
func Keep(cut *Cut, criteria Criteria) (bool, Rejection) {
	if criteria.MinDuration != nil {
		min := *criteria.MinDuration
		dur, ok := cut.Duration()
		if !ok || dur < min {
			return false, RejectDuration
		}
		if criteria.RequireAllSupervisions {
			for _, sup := range cut.Supervisions() {
				supDur, ok := sup.Duration()
				if !ok || supDur < min {
					return false, RejectDuration
				}
			}
		}
	}

	if criteria.DropEmptyText && AllTextsEmpty(cut) {
		return false, RejectEmptyText
	}

	if criteria.TargetSamplingRate != nil {
		rate, ok := cut.SamplingRate()
		if !ok || rate != *criteria.TargetSamplingRate {
			return false, RejectSamplingRate
		}
	}

	if criteria.TargetChannel != nil {
		if !cut.Channel().EqualsList(criteria.TargetChannel) {
			return false, RejectChannel
		}
	}

	return true, RejectNone
}

// AllTextsEmpty reports whether the cut has supervisions and every one of
// them carries empty or missing text. A cut without supervisions is not
// considered empty-texted.
func AllTextsEmpty(cut *Cut) bool {
	sups := cut.Supervisions()
	if len(sups) == 0 {
		return false
	}
	for _, sup := range sups {
		text, ok := sup.Text()
		if ok && strings.TrimSpace(text) != "" {
			return false
		}
	}
	return true
}
