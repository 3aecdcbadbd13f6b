package manifest

import (
	"bytes"
	"encoding/json"
)

// field is one top-level or supervision-level JSON member, raw bytes intact.
type field struct {
	key string
	raw json.RawMessage
}

// Cut is one manifest record. The zero value is not useful; build one with
// Decode.
type Cut struct {
	fields       []field
	supIndex     int
	duration     *float64
	samplingRate *int
	channel      Channel
	supervisions []*Supervision
}

// Duration returns the cut's top-level duration in seconds. ok is false when
// the field is absent or not numeric.
func (c *Cut) Duration() (float64, bool) {
	if c.duration == nil {
		return 0, false
	}
	return *c.duration, true
}

// SamplingRate returns recording.sampling_rate. ok is false when the nested
// field is absent.
func (c *Cut) SamplingRate() (int, bool) {
	if c.samplingRate == nil {
		return 0, false
	}
	return *c.samplingRate, true
}

// Channel returns the cut's channel value.
func (c *Cut) Channel() Channel {
	return c.channel
}

// Supervisions returns the cut's supervision spans in manifest order. The
// slice is shared with the Cut; SetText on an element is reflected when the
// cut is re-encoded.
func (c *Cut) Supervisions() []*Supervision {
	return c.supervisions
}

// Supervision is one supervision span within a cut.
type Supervision struct {
	fields   []field
	text     *string
	duration *float64
}

// Text returns the span's transcript. ok is false when the field is absent or
// not a string.
func (s *Supervision) Text() (string, bool) {
	if s.text == nil {
		return "", false
	}
	return *s.text, true
}

// Duration returns the span's duration in seconds, if present and numeric.
func (s *Supervision) Duration() (float64, bool) {
	if s.duration == nil {
		return 0, false
	}
	return *s.duration, true
}

// SetText replaces the span's transcript, updating both the typed view and
// the raw bytes used for encoding.
func (s *Supervision) SetText(text string) {
	s.text = &text
	raw := encodeJSONString(text)
	for i := range s.fields {
		if s.fields[i].key == "text" {
			s.fields[i].raw = raw
			return
		}
	}
	s.fields = append(s.fields, field{key: "text", raw: raw})
}

// Channel is the cut's channel field: absent, a bare integer, or an integer
// list. Filtering compares the raw shape exactly; statistics canonicalize a
// bare integer into a one-element list (the ChannelKey).
type Channel struct {
	present bool
	scalar  bool
	values  []int
}

// Present reports whether the channel field carried a usable value.
func (c Channel) Present() bool {
	return c.present
}

// Key returns the canonical list form used for histogram bucketing. ok is
// false for absent channels, which are excluded from channel statistics.
func (c Channel) Key() ([]int, bool) {
	if !c.present {
		return nil, false
	}
	return c.values, true
}

// EqualsList reports whether the raw channel value is a list with exactly the
// target's values in order. A bare integer never matches, even against a
// one-element target; that asymmetry with Key is deliberate.
func (c Channel) EqualsList(target []int) bool {
	if !c.present || c.scalar {
		return false
	}
	if len(c.values) != len(target) {
		return false
	}
	for i := range target {
		if c.values[i] != target[i] {
			return false
		}
	}
	return true
}

// encodeJSONString marshals s as a JSON string without HTML escaping, keeping
// non-ASCII text literal on the wire.
func encodeJSONString(s string) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode cannot fail for a plain string.
	_ = enc.Encode(s)
	return json.RawMessage(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
