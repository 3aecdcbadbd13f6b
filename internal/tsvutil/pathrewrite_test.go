package tsvutil_test

import (
	"testing"

	"cutclean/internal/tsvutil"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/data/media//clip.flac", "/data/media/clip.flac"},
		{"//server/share//a", "//server/share/a"},
		{"relative//path", "relative/path"},
		{"/a/b/c", "/a/b/c"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := tsvutil.NormalizePath(tc.in); got != tc.want {
			t.Fatalf("NormalizePath(%q): got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestPathRewritePrefixMatch(t *testing.T) {
	rw := tsvutil.PathRewrite{
		OldRoot:  "/data/media",
		NewRoot:  "/data/media_wav_24k",
		ForceExt: ".wav",
	}
	got := rw.Apply("/data/media//clip.flac")
	if got != "/data/media_wav_24k/clip.wav" {
		t.Fatalf("unexpected rewrite: %q", got)
	}
}

func TestPathRewriteFallbackSubstring(t *testing.T) {
	rw := tsvutil.PathRewrite{
		OldRoot:     "/srv/other/media",
		NewRoot:     "/srv/other/media_wav_24k",
		ForceExt:    ".wav",
		FallbackOld: "/media/",
		FallbackNew: "/media_wav_24k/",
	}
	got := rw.Apply("/different/media/clip.flac")
	if got != "/different/media_wav_24k/clip.wav" {
		t.Fatalf("unexpected fallback rewrite: %q", got)
	}

	// A path containing neither the root nor the fallback substring only gets
	// slash and extension normalization.
	got = rw.Apply("/elsewhere//audio/clip.flac")
	if got != "/elsewhere/audio/clip.wav" {
		t.Fatalf("unexpected untouched rewrite: %q", got)
	}
}

func TestPathRewriteDotfileKeepsName(t *testing.T) {
	rw := tsvutil.PathRewrite{ForceExt: ".wav"}
	if got := rw.Apply("/data/media/.hidden"); got != "/data/media/.hidden.wav" {
		t.Fatalf("unexpected dotfile rewrite: %q", got)
	}
	if got := rw.Apply("/data/media/.hidden.flac"); got != "/data/media/.hidden.wav" {
		t.Fatalf("unexpected dotfile rewrite: %q", got)
	}
}

func TestPathRewriteEmptyInput(t *testing.T) {
	rw := tsvutil.PathRewrite{OldRoot: "/a", NewRoot: "/b", ForceExt: ".wav"}
	if got := rw.Apply("   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRowShortRowSemantics(t *testing.T) {
	row := tsvutil.ParseRow("name\ttranscript")
	if _, ok := row.Field(2); ok {
		t.Fatal("expected missing field on short row")
	}
	if v, ok := row.Field(1); !ok || v != "transcript" {
		t.Fatalf("field 1: got (%q, %v)", v, ok)
	}
}

func TestRowRoundTrip(t *testing.T) {
	line := "id\tsome transcript\t/path/to/file.wav\tmore"
	row := tsvutil.ParseRow(line)
	if row.Encode() != line {
		t.Fatalf("round trip changed the line: %q", row.Encode())
	}

	row.SetField(2, "/new/path.wav")
	if row.Encode() != "id\tsome transcript\t/new/path.wav\tmore" {
		t.Fatalf("unexpected encoded row: %q", row.Encode())
	}
}

func TestParseRowEmptyLine(t *testing.T) {
	row := tsvutil.ParseRow("")
	if row == nil || len(row) != 0 {
		t.Fatalf("expected empty row, got %#v", row)
	}
}
