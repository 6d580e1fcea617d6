package behavioral

import (
	"bytes"
	"strings"
	"testing"
)

type flatRate struct {
	price float64
}

func (f flatRate) Name() string                           { return "flat" }
func (f flatRate) Quote(weightKG, distKM float64) float64 { return f.price }

func TestQuoterSwapsStrategiesBehindFixedSurface(t *testing.T) {
	quoter := NewQuoter(flatRate{price: 10})
	if got := quoter.Quote(100, 500); !strings.HasPrefix(got, "flat: $10.00") {
		t.Fatalf("expected flat quote, got %q", got)
	}

	quoter.SetStrategy(flatRate{price: 25})
	if got := quoter.Quote(100, 500); !strings.HasPrefix(got, "flat: $25.00") {
		t.Fatalf("expected swapped strategy to take effect, got %q", got)
	}
}

func TestStrategyForKnowsEveryShippingMode(t *testing.T) {
	for _, name := range []string{"road", "air", "sea", " Air "} {
		s, err := StrategyFor(name)
		if err != nil {
			t.Fatalf("expected strategy for %q, got %v", name, err)
		}
		if s.Quote(10, 100) <= 0 {
			t.Fatalf("expected positive quote from %s", s.Name())
		}
	}
}

func TestStrategyForRejectsUnknownMode(t *testing.T) {
	_, err := StrategyFor("teleport")
	if err == nil || !strings.Contains(err.Error(), "teleport") {
		t.Fatalf("expected unknown strategy error naming the mode, got %v", err)
	}
}

func TestDemoStrategyQuotesAllModes(t *testing.T) {
	var buf bytes.Buffer
	if err := DemoStrategy(&buf); err != nil {
		t.Fatalf("expected demo success, got %v", err)
	}
	out := buf.String()
	for _, mode := range []string{"road:", "air:", "sea:", "rejected:"} {
		if !strings.Contains(out, mode) {
			t.Fatalf("expected demo output to contain %q, got %q", mode, out)
		}
	}
}
