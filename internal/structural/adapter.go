package structural

import (
	"fmt"
	"io"
	"math"
)

// PaymentGateway is the surface modern callers expect.
type PaymentGateway interface {
	Charge(amount float64, reference string) (string, error)
}

// LegacyProcessor settles in integer cents and knows nothing about the
// PaymentGateway contract.
type LegacyProcessor struct{}

func (LegacyProcessor) MakePayment(cents int64, memo string) string {
	return fmt.Sprintf("LEGACY SETTLED %d CENTS (%s)", cents, memo)
}

// LegacyGatewayAdapter makes a LegacyProcessor usable as a PaymentGateway.
type LegacyGatewayAdapter struct {
	Processor LegacyProcessor
}

func (a LegacyGatewayAdapter) Charge(amount float64, reference string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("charge amount must be positive: %.2f", amount)
	}
	cents := int64(math.Round(amount * 100))
	return a.Processor.MakePayment(cents, reference), nil
}

func DemoAdapter(w io.Writer) error {
	var gateway PaymentGateway = LegacyGatewayAdapter{}
	receipt, err := gateway.Charge(19.99, "order-1042")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "modern call: Charge(19.99, order-1042)")
	fmt.Fprintln(w, "adapted to:", receipt)
	if _, err := gateway.Charge(-5, "order-1043"); err != nil {
		fmt.Fprintf(w, "rejected: %v\n", err)
	}
	return nil
}
