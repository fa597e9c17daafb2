package valueobjects

import "errors"

// BillingCycle represents how often a plan renews.
type BillingCycle string

const (
	BillingCycleWeekly     BillingCycle = "weekly"
	BillingCycleBiweekly   BillingCycle = "biweekly"
	BillingCycleMonthly    BillingCycle = "monthly"
	BillingCycleQuarterly  BillingCycle = "quarterly"
	BillingCycleSemiannual BillingCycle = "semiannual"
	BillingCycleYearly     BillingCycle = "yearly"
)

// ErrInvalidBillingCycle is returned when the billing cycle is not recognized
var ErrInvalidBillingCycle = errors.New("invalid billing cycle")

var validBillingCycles = map[BillingCycle]bool{
	BillingCycleWeekly:     true,
	BillingCycleBiweekly:   true,
	BillingCycleMonthly:    true,
	BillingCycleQuarterly:  true,
	BillingCycleSemiannual: true,
	BillingCycleYearly:     true,
}

// NewBillingCycle validates and returns a BillingCycle
func NewBillingCycle(value string) (BillingCycle, error) {
	cycle := BillingCycle(value)
	if !cycle.IsValid() {
		return "", ErrInvalidBillingCycle
	}
	return cycle, nil
}

// IsValid checks whether the billing cycle is one of the known values
func (c BillingCycle) IsValid() bool {
	return validBillingCycles[c]
}

func (c BillingCycle) String() string {
	return string(c)
}
