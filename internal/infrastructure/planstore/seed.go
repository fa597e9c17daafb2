package planstore

import (
	"context"
	"fmt"

	"luma/internal/domain/plan"
	vo "luma/internal/domain/plan/valueobjects"
	"luma/internal/shared/logger"
)

type seedPlan struct {
	id            string
	name          string
	description   string
	maxQuality    vo.VideoQuality
	screens       int
	downloadLimit int
	profileLimit  int
	amountAOA     uint64
}

// Launch catalog. Ids are stable slugs so client bookmarks and support
// tooling can reference tiers by name.
var defaultPlans = []seedPlan{
	{
		id:            "basic",
		name:          "Basic",
		description:   "Watch on one screen at a time in standard definition.",
		maxQuality:    vo.VideoQualitySD,
		screens:       1,
		downloadLimit: 5,
		profileLimit:  1,
		amountAOA:     250000,
	},
	{
		id:            "standard",
		name:          "Standard",
		description:   "Watch on two screens at a time in Full HD.",
		maxQuality:    vo.VideoQualityFHD,
		screens:       2,
		downloadLimit: 30,
		profileLimit:  3,
		amountAOA:     450000,
	},
	{
		id:            "premium",
		name:          "Premium",
		description:   "Watch on four screens at a time in Ultra HD with spatial audio.",
		maxQuality:    vo.VideoQuality4K,
		screens:       4,
		downloadLimit: 100,
		profileLimit:  5,
		amountAOA:     750000,
	},
}

// Seed installs the default catalog when the store is empty. It is safe to
// call on every startup; a non-empty store is left untouched.
func Seed(ctx context.Context, store *Store, log logger.Interface) error {
	existing, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, sp := range defaultPlans {
		p, err := plan.NewPlan(sp.name, sp.description, sp.maxQuality, sp.screens, sp.downloadLimit, sp.profileLimit, vo.BillingCycleMonthly)
		if err != nil {
			return fmt.Errorf("failed to build seed plan %s: %w", sp.id, err)
		}
		if err := p.SetID(sp.id); err != nil {
			return fmt.Errorf("failed to assign seed plan id %s: %w", sp.id, err)
		}
		price, err := vo.NewPlanPrice(p.ID(), "AOA", sp.amountAOA)
		if err != nil {
			return fmt.Errorf("failed to build seed price for %s: %w", sp.id, err)
		}
		p.SetPrices([]vo.PlanPrice{price})
		if err := store.Create(ctx, p); err != nil {
			return err
		}
	}

	log.Infow("seeded default plan catalog", "count", len(defaultPlans))
	return nil
}
