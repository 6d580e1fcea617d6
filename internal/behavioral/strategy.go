package behavioral

import (
	"fmt"
	"io"
	"strings"
)

// ShippingStrategy prices a shipment; implementations are swappable behind
// the Quoter surface.
type ShippingStrategy interface {
	Name() string
	Quote(weightKG, distanceKM float64) float64
}

type roadShipping struct{}

func (roadShipping) Name() string { return "road" }
func (roadShipping) Quote(weightKG, distanceKM float64) float64 {
	return 4 + 0.08*weightKG*distanceKM/10
}

type airShipping struct{}

func (airShipping) Name() string { return "air" }
func (airShipping) Quote(weightKG, distanceKM float64) float64 {
	return 20 + 0.5*weightKG + 0.02*distanceKM
}

type seaShipping struct{}

func (seaShipping) Name() string { return "sea" }
func (seaShipping) Quote(weightKG, distanceKM float64) float64 {
	return 8 + 0.01*weightKG*distanceKM/10
}

// StrategyFor selects a strategy by name.
func StrategyFor(name string) (ShippingStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "road":
		return roadShipping{}, nil
	case "air":
		return airShipping{}, nil
	case "sea":
		return seaShipping{}, nil
	default:
		return nil, fmt.Errorf("unknown shipping strategy: %s", name)
	}
}

// Quoter is the fixed call surface; the strategy behind it may change at
// any time.
type Quoter struct {
	strategy ShippingStrategy
}

func NewQuoter(s ShippingStrategy) *Quoter {
	return &Quoter{strategy: s}
}

func (q *Quoter) SetStrategy(s ShippingStrategy) {
	q.strategy = s
}

func (q *Quoter) Quote(weightKG, distanceKM float64) string {
	price := q.strategy.Quote(weightKG, distanceKM)
	return fmt.Sprintf("%s: $%.2f for %.0fkg over %.0fkm",
		q.strategy.Name(), price, weightKG, distanceKM)
}

func DemoStrategy(w io.Writer) error {
	quoter := NewQuoter(roadShipping{})
	fmt.Fprintln(w, quoter.Quote(120, 450))

	for _, name := range []string{"air", "sea"} {
		strategy, err := StrategyFor(name)
		if err != nil {
			return err
		}
		quoter.SetStrategy(strategy)
		fmt.Fprintln(w, quoter.Quote(120, 450))
	}

	if _, err := StrategyFor("teleport"); err != nil {
		fmt.Fprintf(w, "rejected: %v\n", err)
	}
	return nil
}
