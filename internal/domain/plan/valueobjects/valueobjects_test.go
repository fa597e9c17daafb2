package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBillingCycle(t *testing.T) {
	for _, valid := range []string{"weekly", "biweekly", "monthly", "quarterly", "semiannual", "yearly"} {
		cycle, err := NewBillingCycle(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, cycle.String())
	}

	_, err := NewBillingCycle("daily")
	assert.ErrorIs(t, err, ErrInvalidBillingCycle)
}

func TestNewVideoQuality(t *testing.T) {
	for _, valid := range []string{"SD", "HD", "FHD", "4K"} {
		q, err := NewVideoQuality(valid)
		require.NoError(t, err)
		assert.True(t, q.IsValid())
	}

	_, err := NewVideoQuality("8K")
	assert.ErrorIs(t, err, ErrInvalidVideoQuality)
}

func TestVideoQualityAtLeast(t *testing.T) {
	assert.True(t, VideoQuality4K.AtLeast(VideoQualityHD))
	assert.True(t, VideoQualityHD.AtLeast(VideoQualityHD))
	assert.False(t, VideoQualitySD.AtLeast(VideoQualityFHD))
}

func TestNewPlanPrice(t *testing.T) {
	price, err := NewPlanPrice("plan_abc", "AOA", 5000)
	require.NoError(t, err)
	assert.Equal(t, "plan_abc", price.PlanID())
	assert.Equal(t, "AOA", price.CurrencyCode())
	assert.Equal(t, uint64(5000), price.Amount())

	_, err = NewPlanPrice("plan_abc", "AOA", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewPlanPrice("plan_abc", "XXX", 100)
	assert.ErrorIs(t, err, ErrInvalidCurrency)
}

func TestPlanPriceBoundTo(t *testing.T) {
	price, err := NewPlanPrice("WRONG", "USD", 100)
	require.NoError(t, err)

	bound := price.BoundTo("plan_real")
	assert.Equal(t, "plan_real", bound.PlanID())
	// BoundTo returns a copy; the original is untouched.
	assert.Equal(t, "WRONG", price.PlanID())
}

func TestPlanPriceEquals(t *testing.T) {
	a, _ := NewPlanPrice("plan_a", "USD", 100)
	b, _ := NewPlanPrice("plan_a", "USD", 100)
	c, _ := NewPlanPrice("plan_a", "EUR", 100)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
