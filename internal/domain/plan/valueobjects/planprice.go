package valueobjects

import (
	"errors"
	"time"
)

// PlanPrice represents the price of a plan in a single currency.
// It is a value object; the Plan entity owns the back-reference and
// rewrites it on every write, regardless of what callers supply.
type PlanPrice struct {
	planID       string
	currencyCode string
	amount       uint64
	createdAt    time.Time
}

var (
	// ErrInvalidAmount is returned when the amount is zero
	ErrInvalidAmount = errors.New("price amount must be greater than zero")
	// ErrInvalidCurrency is returned when the currency code is invalid
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// Valid currency codes
var validCurrencies = map[string]bool{
	"AOA": true,
	"USD": true,
	"EUR": true,
	"GBP": true,
	"BRL": true,
}

// NewPlanPrice creates a PlanPrice. The plan back-reference may be empty at
// construction; the owning Plan binds it when the price is attached.
func NewPlanPrice(planID, currencyCode string, amount uint64) (PlanPrice, error) {
	if amount == 0 {
		return PlanPrice{}, ErrInvalidAmount
	}
	if !validCurrencies[currencyCode] {
		return PlanPrice{}, ErrInvalidCurrency
	}

	return PlanPrice{
		planID:       planID,
		currencyCode: currencyCode,
		amount:       amount,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructPlanPrice rebuilds a PlanPrice from stored state.
func ReconstructPlanPrice(planID, currencyCode string, amount uint64, createdAt time.Time) PlanPrice {
	return PlanPrice{
		planID:       planID,
		currencyCode: currencyCode,
		amount:       amount,
		createdAt:    createdAt,
	}
}

// PlanID returns the owning plan's id
func (p PlanPrice) PlanID() string {
	return p.planID
}

// CurrencyCode returns the ISO currency code
func (p PlanPrice) CurrencyCode() string {
	return p.currencyCode
}

// Amount returns the price in the smallest currency unit
func (p PlanPrice) Amount() uint64 {
	return p.amount
}

// CreatedAt returns the creation timestamp
func (p PlanPrice) CreatedAt() time.Time {
	return p.createdAt
}

// BoundTo returns a copy of the price with the back-reference set to planID.
// The owning Plan calls this on attach so a caller-supplied planID can never
// survive a write.
func (p PlanPrice) BoundTo(planID string) PlanPrice {
	p.planID = planID
	return p
}

// Equals checks value equality ignoring timestamps.
func (p PlanPrice) Equals(other PlanPrice) bool {
	return p.planID == other.planID &&
		p.currencyCode == other.currencyCode &&
		p.amount == other.amount
}
