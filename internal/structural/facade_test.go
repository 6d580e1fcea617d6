package structural

import (
	"strings"
	"testing"
)

func TestPlaceOrderRunsSubsystemsInSequence(t *testing.T) {
	facade := NewOrderFacade(map[string]int{"keyboard": 3})
	steps, err := facade.PlaceOrder("keyboard", 2, 119.80)
	if err != nil {
		t.Fatalf("expected order success, got %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected three subsystem steps, got %v", steps)
	}
	for i, want := range []string{"reserved", "charged", "dispatched"} {
		if !strings.HasPrefix(steps[i], want) {
			t.Fatalf("expected step %d to start with %q, got %q", i, want, steps[i])
		}
	}
}

func TestPlaceOrderStopsOnInsufficientStock(t *testing.T) {
	facade := NewOrderFacade(map[string]int{"keyboard": 1})
	if _, err := facade.PlaceOrder("keyboard", 5, 299.50); err == nil {
		t.Fatalf("expected insufficient stock rejection")
	}

	// The failed order must not consume stock.
	if _, err := facade.PlaceOrder("keyboard", 1, 59.90); err != nil {
		t.Fatalf("expected remaining stock to be orderable, got %v", err)
	}
}

func TestFacadeCopiesItsStock(t *testing.T) {
	stock := map[string]int{"keyboard": 2}
	facade := NewOrderFacade(stock)
	stock["keyboard"] = 0
	if _, err := facade.PlaceOrder("keyboard", 2, 119.80); err != nil {
		t.Fatalf("expected facade to own a stock snapshot, got %v", err)
	}
}
