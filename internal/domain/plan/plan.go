package plan

import (
	"fmt"
	"time"

	vo "luma/internal/domain/plan/valueobjects"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Plan is the aggregate root for a subscription plan. Prices are owned by
// the plan: their back-reference is rewritten to the plan's id on every
// attach, so referential integrity never depends on caller input.
type Plan struct {
	id            string
	name          string
	description   string
	maxQuality    vo.VideoQuality
	screens       int
	downloadLimit int
	profileLimit  int
	billingCycle  vo.BillingCycle
	status        Status
	prices        []vo.PlanPrice
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPlan(name, description string, maxQuality vo.VideoQuality, screens, downloadLimit, profileLimit int, billingCycle vo.BillingCycle) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if !maxQuality.IsValid() {
		return nil, fmt.Errorf("invalid video quality: %s", maxQuality)
	}
	if screens <= 0 {
		return nil, fmt.Errorf("simultaneous screens must be greater than 0")
	}
	if downloadLimit <= 0 {
		return nil, fmt.Errorf("download limit must be greater than 0")
	}
	if profileLimit <= 0 {
		return nil, fmt.Errorf("profile limit must be greater than 0")
	}
	if !billingCycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", billingCycle)
	}

	now := time.Now()
	return &Plan{
		name:          name,
		description:   description,
		maxQuality:    maxQuality,
		screens:       screens,
		downloadLimit: downloadLimit,
		profileLimit:  profileLimit,
		billingCycle:  billingCycle,
		status:        StatusActive,
		prices:        nil,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructPlan rebuilds a Plan from stored state without revalidating.
// Used by the store when producing snapshots.
func ReconstructPlan(id, name, description string, maxQuality vo.VideoQuality, screens, downloadLimit, profileLimit int,
	billingCycle vo.BillingCycle, status Status, prices []vo.PlanPrice, createdAt, updatedAt time.Time) (*Plan, error) {

	if id == "" {
		return nil, fmt.Errorf("plan ID cannot be empty")
	}
	if status != StatusActive && status != StatusInactive {
		return nil, fmt.Errorf("invalid plan status: %s", status)
	}

	p := &Plan{
		id:            id,
		name:          name,
		description:   description,
		maxQuality:    maxQuality,
		screens:       screens,
		downloadLimit: downloadLimit,
		profileLimit:  profileLimit,
		billingCycle:  billingCycle,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
	p.prices = bindPrices(id, prices)
	return p, nil
}

func (p *Plan) ID() string {
	return p.id
}

// SetID assigns the store-generated id. It can be set only once; attached
// prices are rebound to the new id.
func (p *Plan) SetID(id string) error {
	if p.id != "" {
		return fmt.Errorf("plan ID is already set")
	}
	if id == "" {
		return fmt.Errorf("plan ID cannot be empty")
	}
	p.id = id
	p.prices = bindPrices(id, p.prices)
	return nil
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Description() string {
	return p.description
}

func (p *Plan) MaxQuality() vo.VideoQuality {
	return p.maxQuality
}

func (p *Plan) SimultaneousScreens() int {
	return p.screens
}

func (p *Plan) DownloadLimit() int {
	return p.downloadLimit
}

func (p *Plan) ProfileLimit() int {
	return p.profileLimit
}

func (p *Plan) BillingCycle() vo.BillingCycle {
	return p.billingCycle
}

func (p *Plan) Status() Status {
	return p.status
}

func (p *Plan) IsActive() bool {
	return p.status == StatusActive
}

// Prices returns a copy of the attached prices.
func (p *Plan) Prices() []vo.PlanPrice {
	out := make([]vo.PlanPrice, len(p.prices))
	copy(out, p.prices)
	return out
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Plan) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}
	p.name = name
	p.touch()
	return nil
}

func (p *Plan) UpdateDescription(description string) {
	p.description = description
	p.touch()
}

func (p *Plan) SetMaxQuality(quality vo.VideoQuality) error {
	if !quality.IsValid() {
		return fmt.Errorf("invalid video quality: %s", quality)
	}
	p.maxQuality = quality
	p.touch()
	return nil
}

func (p *Plan) SetSimultaneousScreens(screens int) error {
	if screens <= 0 {
		return fmt.Errorf("simultaneous screens must be greater than 0")
	}
	p.screens = screens
	p.touch()
	return nil
}

func (p *Plan) SetDownloadLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("download limit must be greater than 0")
	}
	p.downloadLimit = limit
	p.touch()
	return nil
}

func (p *Plan) SetProfileLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("profile limit must be greater than 0")
	}
	p.profileLimit = limit
	p.touch()
	return nil
}

func (p *Plan) SetBillingCycle(cycle vo.BillingCycle) error {
	if !cycle.IsValid() {
		return fmt.Errorf("invalid billing cycle: %s", cycle)
	}
	p.billingCycle = cycle
	p.touch()
	return nil
}

// SetPrices replaces the attached prices. Back-references are rewritten to
// this plan's id no matter what the caller supplied.
func (p *Plan) SetPrices(prices []vo.PlanPrice) {
	p.prices = bindPrices(p.id, prices)
	p.touch()
}

func (p *Plan) Activate() {
	if p.status == StatusActive {
		return
	}
	p.status = StatusActive
	p.touch()
}

func (p *Plan) Deactivate() {
	if p.status == StatusInactive {
		return
	}
	p.status = StatusInactive
	p.touch()
}

// Clone returns an independent deep copy. Store reads hand out clones so
// callers can never mutate store internals through a returned plan.
func (p *Plan) Clone() *Plan {
	clone := *p
	clone.prices = make([]vo.PlanPrice, len(p.prices))
	copy(clone.prices, p.prices)
	return &clone
}

func (p *Plan) touch() {
	p.updatedAt = time.Now()
}

func bindPrices(planID string, prices []vo.PlanPrice) []vo.PlanPrice {
	if prices == nil {
		return nil
	}
	bound := make([]vo.PlanPrice, len(prices))
	for i, price := range prices {
		bound[i] = price.BoundTo(planID)
	}
	return bound
}
