package observability

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()
}

func TestRecordDemoShowsUpInSummary(t *testing.T) {
	RegisterMetrics()
	RecordDemo("structural", "composite", nil, 3*time.Millisecond)
	RecordDemo("structural", "composite", nil, 2*time.Millisecond)
	RecordDemo("creational", "factory", errors.New("unknown channel"), time.Millisecond)

	report, err := Summary()
	if err != nil {
		t.Fatalf("expected summary success, got %v", err)
	}
	if !strings.Contains(report, "structural/composite ok=2") {
		t.Fatalf("expected composite ok count in summary, got %q", report)
	}
	if !strings.Contains(report, "creational/factory error=1") {
		t.Fatalf("expected factory error count in summary, got %q", report)
	}
}

func TestParseLevelAcceptsKnownNames(t *testing.T) {
	for _, raw := range []string{"debug", "INFO", " warn ", "warning", "error"} {
		if _, ok := ParseLevel(raw); !ok {
			t.Fatalf("expected %q to parse", raw)
		}
	}
	if _, ok := ParseLevel("verbose"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
}
