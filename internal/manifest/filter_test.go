package manifest_test

import (
	"testing"

	"cutclean/internal/manifest"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func decodeLine(t *testing.T, line string) *manifest.Cut {
	t.Helper()
	cut, err := manifest.Decode(line)
	if err != nil {
		t.Fatalf("decode %q: %v", line, err)
	}
	return cut
}

func TestKeepMinDuration(t *testing.T) {
	criteria := manifest.Criteria{MinDuration: floatPtr(3.0)}

	short := decodeLine(t, `{"duration":2.0}`)
	if keep, why := manifest.Keep(short, criteria); keep || why != manifest.RejectDuration {
		t.Fatalf("short cut: got (%v, %v)", keep, why)
	}

	missing := decodeLine(t, `{"id":"x"}`)
	if keep, why := manifest.Keep(missing, criteria); keep || why != manifest.RejectDuration {
		t.Fatalf("missing duration: got (%v, %v)", keep, why)
	}

	exact := decodeLine(t, `{"duration":3.0}`)
	if keep, _ := manifest.Keep(exact, criteria); !keep {
		t.Fatal("duration equal to the minimum should be kept")
	}
}

func TestKeepRequireAllSupervisions(t *testing.T) {
	criteria := manifest.Criteria{MinDuration: floatPtr(3.0), RequireAllSupervisions: true}

	cut := decodeLine(t, `{"duration":5.0,"supervisions":[{"duration":4.0},{"duration":1.0}]}`)
	if keep, why := manifest.Keep(cut, criteria); keep || why != manifest.RejectDuration {
		t.Fatalf("short supervision: got (%v, %v)", keep, why)
	}

	cut = decodeLine(t, `{"duration":5.0,"supervisions":[{"duration":4.0},{"id":"no-dur"}]}`)
	if keep, why := manifest.Keep(cut, criteria); keep || why != manifest.RejectDuration {
		t.Fatalf("missing supervision duration: got (%v, %v)", keep, why)
	}

	cut = decodeLine(t, `{"duration":5.0,"supervisions":[{"duration":4.0},{"duration":3.0}]}`)
	if keep, _ := manifest.Keep(cut, criteria); !keep {
		t.Fatal("all supervisions meeting the minimum should be kept")
	}
}

func TestKeepEmptyTextPolicy(t *testing.T) {
	empty := decodeLine(t, `{"supervisions":[{"text":"  "},{"id":"none"}]}`)

	if keep, why := manifest.Keep(empty, manifest.Criteria{DropEmptyText: true}); keep || why != manifest.RejectEmptyText {
		t.Fatalf("empty texts with drop policy: got (%v, %v)", keep, why)
	}
	if keep, _ := manifest.Keep(empty, manifest.Criteria{}); !keep {
		t.Fatal("empty texts without drop policy should be kept")
	}

	// A cut with no supervisions at all is not empty-texted.
	bare := decodeLine(t, `{"id":"bare"}`)
	if keep, _ := manifest.Keep(bare, manifest.Criteria{DropEmptyText: true}); !keep {
		t.Fatal("cut without supervisions should not trip the empty-text rule")
	}
}

func TestKeepSamplingRateAndChannel(t *testing.T) {
	cut := decodeLine(t, `{"recording":{"sampling_rate":24000},"channel":[0]}`)

	criteria := manifest.Criteria{TargetSamplingRate: intPtr(24000), TargetChannel: []int{0}}
	if keep, _ := manifest.Keep(cut, criteria); !keep {
		t.Fatal("matching cut should be kept")
	}

	criteria.TargetSamplingRate = intPtr(16000)
	if keep, why := manifest.Keep(cut, criteria); keep || why != manifest.RejectSamplingRate {
		t.Fatalf("rate mismatch: got (%v, %v)", keep, why)
	}

	criteria = manifest.Criteria{TargetChannel: []int{1}}
	if keep, why := manifest.Keep(cut, criteria); keep || why != manifest.RejectChannel {
		t.Fatalf("channel mismatch: got (%v, %v)", keep, why)
	}
}

func TestKeepPrecedence(t *testing.T) {
	// Everything fails; duration must be the attributed reason.
	cut := decodeLine(t, `{"duration":1.0,"recording":{"sampling_rate":16000},"channel":2,"supervisions":[{"text":""}]}`)
	criteria := manifest.Criteria{
		MinDuration:        floatPtr(3.0),
		DropEmptyText:      true,
		TargetSamplingRate: intPtr(24000),
		TargetChannel:      []int{0},
	}
	if keep, why := manifest.Keep(cut, criteria); keep || why != manifest.RejectDuration {
		t.Fatalf("expected duration rejection first, got (%v, %v)", keep, why)
	}
}

func TestKeepNoCriteria(t *testing.T) {
	cut := decodeLine(t, `{"id":"anything"}`)
	if keep, why := manifest.Keep(cut, manifest.Criteria{}); !keep || why != manifest.RejectNone {
		t.Fatalf("no active rules should keep: got (%v, %v)", keep, why)
	}
}
