package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedRecord marks a line that decoded as UTF-8 but is not a
// well-formed manifest record.
var ErrMalformedRecord = errors.New("malformed record")

// Decode parses exactly one manifest line into a Cut.
func Decode(line string) (*Cut, error) {
	dec := json.NewDecoder(strings.NewReader(line))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: line is not a JSON object", ErrMalformedRecord)
	}

	cut := &Cut{supIndex: -1}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string object key", ErrMalformedRecord)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedRecord, key, err)
		}
		cut.fields = append(cut.fields, field{key: key, raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after record", ErrMalformedRecord)
	}

	if err := cut.parseViews(); err != nil {
		return nil, err
	}
	return cut, nil
}

// Encode serializes the cut back to one line. Unmodified fields are written
// byte-for-byte as decoded; supervisions are rebuilt so text edits land.
func Encode(cut *Cut) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range cut.fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(encodeJSONString(f.key))
		b.WriteByte(':')
		if i == cut.supIndex {
			encodeSupervisions(&b, cut.supervisions)
		} else {
			b.Write(f.raw)
		}
	}
	b.WriteByte('}')
	return b.String()
}

func encodeSupervisions(b *strings.Builder, sups []*Supervision) {
	b.WriteByte('[')
	for i, sup := range sups {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('{')
		for j, f := range sup.fields {
			if j > 0 {
				b.WriteByte(',')
			}
			b.Write(encodeJSONString(f.key))
			b.WriteByte(':')
			b.Write(f.raw)
		}
		b.WriteByte('}')
	}
	b.WriteByte(']')
}

func (c *Cut) parseViews() error {
	for i, f := range c.fields {
		switch f.key {
		case "duration":
			var d float64
			if err := json.Unmarshal(f.raw, &d); err == nil {
				c.duration = &d
			}
		case "channel":
			c.channel = parseChannel(f.raw)
		case "recording":
			var rec struct {
				SamplingRate *int `json:"sampling_rate"`
			}
			if err := json.Unmarshal(f.raw, &rec); err == nil {
				c.samplingRate = rec.SamplingRate
			}
		case "supervisions":
			sups, err := parseSupervisions(f.raw)
			if err != nil {
				return err
			}
			c.supervisions = sups
			c.supIndex = i
		}
	}
	return nil
}

func parseChannel(raw json.RawMessage) Channel {
	var scalar int
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return Channel{present: true, scalar: true, values: []int{scalar}}
	}
	var list []int
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		return Channel{present: true, values: list}
	}
	return Channel{}
}

func parseSupervisions(raw json.RawMessage) ([]*Supervision, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: supervisions: %v", ErrMalformedRecord, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("%w: supervisions is not an array", ErrMalformedRecord)
	}

	var sups []*Supervision
	for dec.More() {
		var elem json.RawMessage
		if err := dec.Decode(&elem); err != nil {
			return nil, fmt.Errorf("%w: supervision entry: %v", ErrMalformedRecord, err)
		}
		sup, err := parseSupervision(elem)
		if err != nil {
			return nil, err
		}
		sups = append(sups, sup)
	}
	return sups, nil
}

func parseSupervision(raw json.RawMessage) (*Supervision, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: supervision: %v", ErrMalformedRecord, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: supervision is not an object", ErrMalformedRecord)
	}

	sup := &Supervision{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: supervision: %v", ErrMalformedRecord, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: supervision: non-string key", ErrMalformedRecord)
		}
		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("%w: supervision field %q: %v", ErrMalformedRecord, key, err)
		}
		sup.fields = append(sup.fields, field{key: key, raw: val})

		switch key {
		case "text":
			var text string
			if err := json.Unmarshal(val, &text); err == nil {
				sup.text = &text
			}
		case "duration":
			var d float64
			if err := json.Unmarshal(val, &d); err == nil {
				sup.duration = &d
			}
		}
	}
	return sup, nil
}
