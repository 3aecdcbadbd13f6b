package render_test

import (
	"strings"
	"testing"

	"cutclean/internal/render"
)

func TestTableRendersHeadersAndRows(t *testing.T) {
	out := render.Table(
		[]string{"Rate", "Count"},
		[][]string{{"24000", "12"}, {"16000", "3"}},
		1,
	)

	for _, want := range []string{"Rate", "Count", "24000", "16000", "12", "3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}
	// Right alignment pushes the count against the column's closing border.
	if !strings.Contains(out, "12 │") {
		t.Fatalf("expected right-aligned count column:\n%s", out)
	}
}

func TestTablePadsShortRows(t *testing.T) {
	out := render.Table([]string{"A", "B"}, [][]string{{"only"}})
	if strings.Contains(out, "<nil>") {
		t.Fatalf("short row should pad with empty cells:\n%s", out)
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	if out := render.Table(nil, nil); out != "" {
		t.Fatalf("expected empty string, got %q", out)
	}
}
