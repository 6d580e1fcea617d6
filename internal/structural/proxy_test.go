package structural

import (
	"strings"
	"testing"
)

func TestDeniedFetchDoesNotOpenTheArchive(t *testing.T) {
	proxy := NewStoreProxy("analyst")
	if _, err := proxy.Fetch("intern", "q3-report"); err == nil {
		t.Fatalf("expected denial for unauthorized role")
	}
	if proxy.Opened() {
		t.Fatalf("expected subject construction to be deferred on denial")
	}
}

func TestAuthorizedFetchOpensOnceAndReads(t *testing.T) {
	proxy := NewStoreProxy("analyst")

	record, err := proxy.Fetch("analyst", "q3-report")
	if err != nil {
		t.Fatalf("expected authorized fetch success, got %v", err)
	}
	if record != "revenue up 4%" {
		t.Fatalf("expected archive record, got %q", record)
	}
	if !proxy.Opened() {
		t.Fatalf("expected subject constructed after first authorized fetch")
	}

	if _, err := proxy.Fetch("analyst", "roadmap"); err != nil {
		t.Fatalf("expected second fetch success, got %v", err)
	}
	if proxy.opens != 1 {
		t.Fatalf("expected a single subject construction, got %d", proxy.opens)
	}
}

func TestMissingRecordSurfacesAsError(t *testing.T) {
	proxy := NewStoreProxy("analyst")
	_, err := proxy.Fetch("analyst", "q5-report")
	if err == nil || !strings.Contains(err.Error(), "q5-report") {
		t.Fatalf("expected missing-record error naming the record, got %v", err)
	}
}
