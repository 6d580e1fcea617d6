package docs

import (
	"strings"
	"testing"

	"github.com/danmuck/patternctl/internal/catalog"
)

func TestLoadParsesAndValidatesTheManifest(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("expected manifest to load, got %v", err)
	}
	if len(m.Patterns) != 13 {
		t.Fatalf("expected 13 manifest entries, got %d", len(m.Patterns))
	}
	seen := make(map[string]bool)
	for _, e := range m.Patterns {
		if seen[e.Name] {
			t.Fatalf("expected unique names, %s duplicated", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestEveryDocReadsAndNamesItsPattern(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("expected manifest to load, got %v", err)
	}
	for _, e := range m.Patterns {
		body, err := m.ReadDoc(e.Name)
		if err != nil {
			t.Fatalf("expected doc for %s, got %v", e.Name, err)
		}
		if !strings.HasPrefix(body, "# ") {
			t.Fatalf("expected %s doc to open with a heading, got %q", e.Name, body[:20])
		}
	}
}

func TestReadDocRejectsUnknownPattern(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("expected manifest to load, got %v", err)
	}
	if _, err := m.ReadDoc("memento"); err == nil {
		t.Fatalf("expected unknown pattern rejection")
	}
}

func TestManifestMatchesTheDefaultRegistry(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("expected manifest to load, got %v", err)
	}
	if err := m.VerifyAgainst(catalog.Default()); err != nil {
		t.Fatalf("expected manifest and registry to agree, got %v", err)
	}
}

func TestVerifyAgainstCatchesDrift(t *testing.T) {
	m, err := Load()
	if err != nil {
		t.Fatalf("expected manifest to load, got %v", err)
	}

	extra := catalog.Default()
	extra.Register(catalog.Func("memento", catalog.FamilyBehavioral, "undo stack", nil))
	if err := m.VerifyAgainst(extra); err == nil {
		t.Fatalf("expected undocumented pattern to be caught")
	}

	if err := m.VerifyAgainst(catalog.NewRegistry()); err == nil {
		t.Fatalf("expected unregistered docs to be caught")
	}
}
