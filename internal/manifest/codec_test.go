package manifest_test

import (
	"errors"
	"strings"
	"testing"

	"cutclean/internal/manifest"
)

const sampleLine = `{"id":"cut-1","duration":2.5,"channel":[0],"recording":{"id":"rec-1","sampling_rate":24000},"supervisions":[{"id":"sup-1","text":"héllo wörld","duration":2.5}],"custom":{"speaker":"spk0"}}`

func TestDecodeTypedViews(t *testing.T) {
	cut, err := manifest.Decode(sampleLine)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	dur, ok := cut.Duration()
	if !ok || dur != 2.5 {
		t.Fatalf("duration: got (%v, %v)", dur, ok)
	}
	rate, ok := cut.SamplingRate()
	if !ok || rate != 24000 {
		t.Fatalf("sampling rate: got (%v, %v)", rate, ok)
	}
	key, ok := cut.Channel().Key()
	if !ok || len(key) != 1 || key[0] != 0 {
		t.Fatalf("channel key: got (%v, %v)", key, ok)
	}
	sups := cut.Supervisions()
	if len(sups) != 1 {
		t.Fatalf("expected 1 supervision, got %d", len(sups))
	}
	text, ok := sups[0].Text()
	if !ok || text != "héllo wörld" {
		t.Fatalf("supervision text: got (%q, %v)", text, ok)
	}
	supDur, ok := sups[0].Duration()
	if !ok || supDur != 2.5 {
		t.Fatalf("supervision duration: got (%v, %v)", supDur, ok)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cut, err := manifest.Decode(sampleLine)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	encoded := manifest.Encode(cut)

	again, err := manifest.Decode(encoded)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if manifest.Encode(again) != encoded {
		t.Fatalf("encoding is not stable:\n first: %s\nsecond: %s", encoded, manifest.Encode(again))
	}

	d1, _ := cut.Duration()
	d2, _ := again.Duration()
	if d1 != d2 {
		t.Fatalf("duration changed across round trip: %v vs %v", d1, d2)
	}
	t1, _ := cut.Supervisions()[0].Text()
	t2, _ := again.Supervisions()[0].Text()
	if t1 != t2 {
		t.Fatalf("text changed across round trip: %q vs %q", t1, t2)
	}
}

func TestEncodeKeepsNonASCIILiteral(t *testing.T) {
	cut, err := manifest.Decode(sampleLine)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	encoded := manifest.Encode(cut)
	if !strings.Contains(encoded, "héllo wörld") {
		t.Fatalf("non-ASCII text was escaped: %s", encoded)
	}
}

func TestEncodePreservesFieldOrder(t *testing.T) {
	cut, err := manifest.Decode(sampleLine)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	encoded := manifest.Encode(cut)

	idIdx := strings.Index(encoded, `"id"`)
	durIdx := strings.Index(encoded, `"duration"`)
	customIdx := strings.Index(encoded, `"custom"`)
	if !(idIdx < durIdx && durIdx < customIdx) {
		t.Fatalf("field order not preserved: %s", encoded)
	}
}

func TestSetTextVisibleInEncode(t *testing.T) {
	cut, err := manifest.Decode(sampleLine)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cut.Supervisions()[0].SetText("replaced text")

	encoded := manifest.Encode(cut)
	again, err := manifest.Decode(encoded)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	text, ok := again.Supervisions()[0].Text()
	if !ok || text != "replaced text" {
		t.Fatalf("expected replaced text, got (%q, %v)", text, ok)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		`{"duration": 2.0`,
		`[1, 2, 3]`,
		`"just a string"`,
		`{"a": 1} trailing`,
		`not json at all`,
	}
	for _, line := range cases {
		if _, err := manifest.Decode(line); !errors.Is(err, manifest.ErrMalformedRecord) {
			t.Fatalf("expected ErrMalformedRecord for %q, got %v", line, err)
		}
	}
}

func TestDecodeAbsentFields(t *testing.T) {
	cut, err := manifest.Decode(`{"id":"bare"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := cut.Duration(); ok {
		t.Fatal("expected absent duration")
	}
	if _, ok := cut.SamplingRate(); ok {
		t.Fatal("expected absent sampling rate")
	}
	if cut.Channel().Present() {
		t.Fatal("expected absent channel")
	}
	if len(cut.Supervisions()) != 0 {
		t.Fatal("expected no supervisions")
	}
}

func TestChannelScalarVersusList(t *testing.T) {
	scalar, err := manifest.Decode(`{"channel":2}`)
	if err != nil {
		t.Fatalf("decode scalar: %v", err)
	}
	list, err := manifest.Decode(`{"channel":[2]}`)
	if err != nil {
		t.Fatalf("decode list: %v", err)
	}

	scalarKey, ok := scalar.Channel().Key()
	if !ok || len(scalarKey) != 1 || scalarKey[0] != 2 {
		t.Fatalf("scalar channel key: got (%v, %v)", scalarKey, ok)
	}
	listKey, _ := list.Channel().Key()
	if len(listKey) != 1 || listKey[0] != scalarKey[0] {
		t.Fatal("scalar and list channels should share a histogram bucket")
	}

	// Filtering equality is stricter: a bare 2 is not the list [2].
	if scalar.Channel().EqualsList([]int{2}) {
		t.Fatal("bare channel value must not match a list target")
	}
	if !list.Channel().EqualsList([]int{2}) {
		t.Fatal("list channel should match an identical list target")
	}
	if list.Channel().EqualsList([]int{2, 0}) {
		t.Fatal("length mismatch should not match")
	}
}
