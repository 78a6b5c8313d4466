// Package pricing models an order as a base price plus an ordered list of
// independently priced add-on components.
package pricing

import (
	"fmt"
	"strings"
)

// Component is an individually priced add-on. Immutable once created.
type Component struct {
	Name      string
	UnitPrice float64
}

// Order holds a base item and its add-on components. Components are
// append-only and keep insertion order; the order affects Describe output
// only, never the total. An Order belongs to a single logical request and is
// not safe for concurrent mutation.
type Order struct {
	baseName   string
	basePrice  float64
	components []Component
}

// NewOrder creates an Order with the given base item and price.
func NewOrder(baseName string, basePrice float64) *Order {
	return &Order{baseName: baseName, basePrice: basePrice}
}

// AddComponent appends a component. Duplicates are allowed.
func (o *Order) AddComponent(c Component) {
	o.components = append(o.components, c)
}

// Components returns the components in insertion order.
func (o *Order) Components() []Component {
	out := make([]Component, len(o.components))
	copy(out, o.components)
	return out
}

// TotalPrice returns basePrice plus the sum of all component prices. It is
// recomputed on every call since components may be added between calls.
func (o *Order) TotalPrice() float64 {
	total := o.basePrice
	for _, c := range o.components {
		total += c.UnitPrice
	}
	return total
}

// Describe renders the base item, each component in insertion order, and the
// total. Pure formatting; no side effects.
func (o *Order) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %.2f\n", o.baseName, o.basePrice)
	for _, c := range o.components {
		fmt.Fprintf(&b, "  + %s: %.2f\n", c.Name, c.UnitPrice)
	}
	fmt.Fprintf(&b, "Total: %.2f", o.TotalPrice())
	return b.String()
}
