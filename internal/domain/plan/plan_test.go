package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "luma/internal/domain/plan/valueobjects"
)

func newTestPlan(t *testing.T) *Plan {
	t.Helper()
	p, err := NewPlan("Premium", "Everything in 4K", vo.VideoQuality4K, 4, 40, 6, vo.BillingCycleMonthly)
	require.NoError(t, err)
	return p
}

func TestNewPlanValidation(t *testing.T) {
	tests := []struct {
		name          string
		planName      string
		quality       vo.VideoQuality
		screens       int
		downloadLimit int
		profileLimit  int
		cycle         vo.BillingCycle
		wantErr       string
	}{
		{"valid", "Basic", vo.VideoQualityHD, 1, 5, 2, vo.BillingCycleMonthly, ""},
		{"empty name", "", vo.VideoQualityHD, 1, 5, 2, vo.BillingCycleMonthly, "name is required"},
		{"bad quality", "Basic", vo.VideoQuality("8K"), 1, 5, 2, vo.BillingCycleMonthly, "invalid video quality"},
		{"zero screens", "Basic", vo.VideoQualityHD, 0, 5, 2, vo.BillingCycleMonthly, "simultaneous screens"},
		{"zero download limit", "Basic", vo.VideoQualityHD, 1, 0, 2, vo.BillingCycleMonthly, "download limit"},
		{"zero profile limit", "Basic", vo.VideoQualityHD, 1, 5, 0, vo.BillingCycleMonthly, "profile limit"},
		{"bad cycle", "Basic", vo.VideoQualityHD, 1, 5, 2, vo.BillingCycle("daily"), "invalid billing cycle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.planName, "", tt.quality, tt.screens, tt.downloadLimit, tt.profileLimit, tt.cycle)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewPlanStartsActive(t *testing.T) {
	p := newTestPlan(t)
	assert.Equal(t, StatusActive, p.Status())
	assert.True(t, p.IsActive())
	assert.Empty(t, p.ID())
}

func TestSetIDOnce(t *testing.T) {
	p := newTestPlan(t)
	require.NoError(t, p.SetID("plan_abc123"))
	assert.Equal(t, "plan_abc123", p.ID())

	assert.Error(t, p.SetID("plan_other"))
	assert.Error(t, (&Plan{}).SetID(""))
}

func TestSetIDRebindsPrices(t *testing.T) {
	p := newTestPlan(t)

	price, err := vo.NewPlanPrice("WRONG", "AOA", 5000)
	require.NoError(t, err)
	p.SetPrices([]vo.PlanPrice{price})

	require.NoError(t, p.SetID("plan_abc123"))

	prices := p.Prices()
	require.Len(t, prices, 1)
	assert.Equal(t, "plan_abc123", prices[0].PlanID())
}

func TestSetPricesRewritesBackReference(t *testing.T) {
	p := newTestPlan(t)
	require.NoError(t, p.SetID("plan_abc123"))

	price, err := vo.NewPlanPrice("WRONG", "USD", 999)
	require.NoError(t, err)
	p.SetPrices([]vo.PlanPrice{price})

	prices := p.Prices()
	require.Len(t, prices, 1)
	assert.Equal(t, "plan_abc123", prices[0].PlanID())
	assert.Equal(t, uint64(999), prices[0].Amount())
}

func TestActivateDeactivate(t *testing.T) {
	p := newTestPlan(t)

	p.Deactivate()
	assert.False(t, p.IsActive())

	p.Activate()
	assert.True(t, p.IsActive())
}

func TestDeactivateRefreshesUpdatedAt(t *testing.T) {
	p := newTestPlan(t)
	before := p.UpdatedAt()

	time.Sleep(time.Millisecond)
	p.Deactivate()
	assert.True(t, p.UpdatedAt().After(before))

	// No-op toggle does not refresh the timestamp.
	after := p.UpdatedAt()
	p.Deactivate()
	assert.Equal(t, after, p.UpdatedAt())
}

func TestCloneIsIndependent(t *testing.T) {
	p := newTestPlan(t)
	require.NoError(t, p.SetID("plan_abc123"))
	price, err := vo.NewPlanPrice("", "AOA", 5000)
	require.NoError(t, err)
	p.SetPrices([]vo.PlanPrice{price})

	clone := p.Clone()
	clone.Deactivate()
	clone.SetPrices(nil)

	assert.True(t, p.IsActive())
	assert.Len(t, p.Prices(), 1)
}

func TestPricesReturnsCopy(t *testing.T) {
	p := newTestPlan(t)
	require.NoError(t, p.SetID("plan_abc123"))
	price, err := vo.NewPlanPrice("", "AOA", 5000)
	require.NoError(t, err)
	p.SetPrices([]vo.PlanPrice{price})

	got := p.Prices()
	got[0] = vo.ReconstructPlanPrice("tampered", "USD", 1, time.Now())

	assert.Equal(t, "plan_abc123", p.Prices()[0].PlanID())
}

func TestSettersValidate(t *testing.T) {
	p := newTestPlan(t)

	assert.Error(t, p.Rename(""))
	assert.Error(t, p.SetMaxQuality("720p"))
	assert.Error(t, p.SetSimultaneousScreens(-1))
	assert.Error(t, p.SetDownloadLimit(0))
	assert.Error(t, p.SetProfileLimit(0))
	assert.Error(t, p.SetBillingCycle("hourly"))

	require.NoError(t, p.Rename("Premium+"))
	require.NoError(t, p.SetMaxQuality(vo.VideoQualityFHD))
	require.NoError(t, p.SetSimultaneousScreens(2))
	assert.Equal(t, "Premium+", p.Name())
	assert.Equal(t, vo.VideoQualityFHD, p.MaxQuality())
}

func TestReconstructPlan(t *testing.T) {
	now := time.Now()
	price := vo.ReconstructPlanPrice("stale", "AOA", 5000, now)

	p, err := ReconstructPlan("plan_abc", "Standard", "", vo.VideoQualityFHD, 2, 20, 4,
		vo.BillingCycleMonthly, StatusInactive, []vo.PlanPrice{price}, now, now)
	require.NoError(t, err)

	assert.False(t, p.IsActive())
	// Reconstruction also enforces the back-reference invariant.
	assert.Equal(t, "plan_abc", p.Prices()[0].PlanID())

	_, err = ReconstructPlan("", "Standard", "", vo.VideoQualityFHD, 2, 20, 4,
		vo.BillingCycleMonthly, StatusActive, nil, now, now)
	assert.Error(t, err)

	_, err = ReconstructPlan("plan_abc", "Standard", "", vo.VideoQualityFHD, 2, 20, 4,
		vo.BillingCycleMonthly, Status("archived"), nil, now, now)
	assert.Error(t, err)
}
