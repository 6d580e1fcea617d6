package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/danmuck/patternctl/internal/catalog"
)

func testPattern() catalog.Pattern {
	return catalog.Func("composite", catalog.FamilyStructural,
		"uniform display over a file tree", func(io.Writer) error { return nil })
}

func TestPlainHeaderNamesPatternAndFamily(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false, 40).PatternHeader(testPattern())
	out := buf.String()
	if !strings.Contains(out, "composite (structural)") {
		t.Fatalf("expected header to name pattern and family, got %q", out)
	}
	if !strings.Contains(out, strings.Repeat("-", 40)) {
		t.Fatalf("expected width-sized rule, got %q", out)
	}
}

func TestListRowAlignsNameAndSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false, 80)
	r.FamilyHeading(catalog.FamilyStructural)
	r.ListRow(testPattern())
	out := buf.String()
	if !strings.HasPrefix(out, "structural\n") {
		t.Fatalf("expected family heading first, got %q", out)
	}
	if !strings.Contains(out, "composite") || !strings.Contains(out, "uniform display") {
		t.Fatalf("expected row with name and summary, got %q", out)
	}
}

func TestMarkdownFallsBackToRawWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	body := "# Composite\n\nfolders contain files\n"
	if err := New(&buf, false, 80).Markdown(body); err != nil {
		t.Fatalf("expected raw markdown success, got %v", err)
	}
	if !strings.Contains(buf.String(), "# Composite") {
		t.Fatalf("expected raw markdown passthrough, got %q", buf.String())
	}
}

func TestZeroWidthFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false, 0).PatternHeader(testPattern())
	if !strings.Contains(buf.String(), strings.Repeat("-", 80)) {
		t.Fatalf("expected default-width rule, got %q", buf.String())
	}
}
