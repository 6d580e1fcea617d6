package structural

import (
	"fmt"
	"io"
)

// WashService prices a car wash; decorators stack extra steps on top.
type WashService interface {
	Cost() float64
	Description() string
}

type BasicWash struct{}

func (BasicWash) Cost() float64       { return 10 }
func (BasicWash) Description() string { return "basic wash" }

type WaxDecorator struct {
	Inner WashService
}

func (d WaxDecorator) Cost() float64       { return d.Inner.Cost() + 5 }
func (d WaxDecorator) Description() string { return d.Inner.Description() + " + wax" }

type PolishDecorator struct {
	Inner WashService
}

func (d PolishDecorator) Cost() float64       { return d.Inner.Cost() + 7.5 }
func (d PolishDecorator) Description() string { return d.Inner.Description() + " + polish" }

type InteriorDecorator struct {
	Inner WashService
}

func (d InteriorDecorator) Cost() float64       { return d.Inner.Cost() + 12 }
func (d InteriorDecorator) Description() string { return d.Inner.Description() + " + interior" }

func DemoDecorator(w io.Writer) error {
	var order WashService = BasicWash{}
	fmt.Fprintf(w, "%-35s $%.2f\n", order.Description(), order.Cost())

	order = WaxDecorator{Inner: order}
	fmt.Fprintf(w, "%-35s $%.2f\n", order.Description(), order.Cost())

	order = PolishDecorator{Inner: order}
	fmt.Fprintf(w, "%-35s $%.2f\n", order.Description(), order.Cost())

	order = InteriorDecorator{Inner: order}
	fmt.Fprintf(w, "%-35s $%.2f\n", order.Description(), order.Cost())
	return nil
}
