// Package operation defines the payment operation contract and the rate-based
// operations shipped by default.
package operation

// Operation transforms a payment amount. Implementations must be pure: the
// same input always yields the same output, with no side effects.
type Operation interface {
	Apply(amount float64) float64
}

// Describer is an optional capability. Operations that can explain themselves
// implement it; callers type-assert instead of relying on every Operation
// having a description.
type Describer interface {
	Description() string
}

// Well-known operation keys.
//
// KeyCredit carries the historical "creidt" spelling and has never been bound
// to an operation; dispatching with it fails like any other unknown key.
const (
	KeyCash   = "cash"
	KeyDebit  = "debit"
	KeyCredit = "creidt"
)

// Default rates for the built-in tariff.
const (
	DefaultCashRate  = 0.05
	DefaultDebitRate = 0.02
)

// Markup adds a proportional charge: amount + amount*Rate.
type Markup struct {
	Rate float64
	Note string
}

// Apply returns the amount increased by Rate.
func (m Markup) Apply(amount float64) float64 {
	return amount + amount*m.Rate
}

// Description returns the configured note, if any.
func (m Markup) Description() string {
	return m.Note
}

// Cut removes a proportional charge: amount - amount*Rate.
type Cut struct {
	Rate float64
	Note string
}

// Apply returns the amount reduced by Rate.
func (c Cut) Apply(amount float64) float64 {
	return amount - amount*c.Rate
}

// Description returns the configured note, if any.
func (c Cut) Description() string {
	return c.Note
}
