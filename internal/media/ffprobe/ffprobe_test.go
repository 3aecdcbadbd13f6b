package ffprobe

import "testing"

func TestFirstAudioStream(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "audio", CodecName: "pcm_s16le", SampleRate: "24000", Channels: 1},
			{CodecType: "audio", CodecName: "flac", SampleRate: "48000", Channels: 2},
		},
	}
	stream, ok := result.FirstAudioStream()
	if !ok {
		t.Fatal("expected an audio stream")
	}
	if stream.CodecName != "pcm_s16le" {
		t.Fatalf("expected the first audio stream, got %q", stream.CodecName)
	}
	if stream.SampleRateHz() != 24000 {
		t.Fatalf("unexpected sample rate: %d", stream.SampleRateHz())
	}
}

func TestFirstAudioStreamAbsent(t *testing.T) {
	result := Result{Streams: []Stream{{CodecType: "video"}}}
	if _, ok := result.FirstAudioStream(); ok {
		t.Fatal("expected no audio stream")
	}
}

func TestSampleRateHzHandlesInvalidValues(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"  ":    0,
		"bad":   0,
		"44100": 44100,
	}
	for input, want := range cases {
		stream := Stream{SampleRate: input}
		if got := stream.SampleRateHz(); got != want {
			t.Fatalf("SampleRateHz(%q): got %d want %d", input, got, want)
		}
	}
}
