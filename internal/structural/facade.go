package structural

import (
	"fmt"
	"io"
)

type inventory struct {
	stock map[string]int
}

func (inv *inventory) reserve(item string, qty int) error {
	have := inv.stock[item]
	if have < qty {
		return fmt.Errorf("insufficient stock for %s: want %d have %d", item, qty, have)
	}
	inv.stock[item] = have - qty
	return nil
}

type paymentDesk struct{}

func (paymentDesk) charge(amount float64) string {
	return fmt.Sprintf("charged $%.2f", amount)
}

type shipmentDesk struct{}

func (shipmentDesk) dispatch(item string, qty int) string {
	return fmt.Sprintf("dispatched %dx %s", qty, item)
}

// OrderFacade drives inventory, payment, and shipment behind one call.
type OrderFacade struct {
	inventory *inventory
	payments  paymentDesk
	shipments shipmentDesk
}

func NewOrderFacade(stock map[string]int) *OrderFacade {
	owned := make(map[string]int, len(stock))
	for item, qty := range stock {
		owned[item] = qty
	}
	return &OrderFacade{inventory: &inventory{stock: owned}}
}

// PlaceOrder runs reserve, charge, dispatch in sequence and reports each
// step.
func (f *OrderFacade) PlaceOrder(item string, qty int, amount float64) ([]string, error) {
	if err := f.inventory.reserve(item, qty); err != nil {
		return nil, err
	}
	steps := []string{
		fmt.Sprintf("reserved %dx %s", qty, item),
		f.payments.charge(amount),
		f.shipments.dispatch(item, qty),
	}
	return steps, nil
}

func DemoFacade(w io.Writer) error {
	facade := NewOrderFacade(map[string]int{"keyboard": 3})

	steps, err := facade.PlaceOrder("keyboard", 2, 119.80)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "PlaceOrder(keyboard, 2):")
	for _, step := range steps {
		fmt.Fprintf(w, "  %s\n", step)
	}

	if _, err := facade.PlaceOrder("keyboard", 5, 299.50); err != nil {
		fmt.Fprintf(w, "rejected: %v\n", err)
	}
	return nil
}
