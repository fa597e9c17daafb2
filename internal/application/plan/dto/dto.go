package dto

import (
	"time"

	"luma/internal/domain/plan"
)

type PlanDTO struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	MaxQuality          string          `json:"max_quality"`
	SimultaneousScreens int             `json:"simultaneous_screens"`
	DownloadLimit       int             `json:"download_limit"`
	ProfileLimit        int             `json:"profile_limit"`
	BillingCycle        string          `json:"billing_cycle"`
	Status              string          `json:"status"`
	IsActive            bool            `json:"is_active"`
	Prices              []*PlanPriceDTO `json:"prices"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// PlanPriceDTO carries one localized price. Amount is in the smallest
// currency unit (centavos, cents).
type PlanPriceDTO struct {
	PlanID       string `json:"plan_id"`
	CurrencyCode string `json:"currency_code"`
	Amount       uint64 `json:"amount"`
}

// PublicPlanDTO is the catalog entry served to unauthenticated clients.
// DescriptionHTML is the plan description rendered from markdown and
// sanitized; inactive plans are never represented by this type.
type PublicPlanDTO struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	DescriptionHTML     string          `json:"description_html"`
	MaxQuality          string          `json:"max_quality"`
	SimultaneousScreens int             `json:"simultaneous_screens"`
	DownloadLimit       int             `json:"download_limit"`
	ProfileLimit        int             `json:"profile_limit"`
	BillingCycle        string          `json:"billing_cycle"`
	Prices              []*PlanPriceDTO `json:"prices"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:                  p.ID(),
		Name:                p.Name(),
		Description:         p.Description(),
		MaxQuality:          string(p.MaxQuality()),
		SimultaneousScreens: p.SimultaneousScreens(),
		DownloadLimit:       p.DownloadLimit(),
		ProfileLimit:        p.ProfileLimit(),
		BillingCycle:        string(p.BillingCycle()),
		Status:              string(p.Status()),
		IsActive:            p.IsActive(),
		Prices:              toPriceDTOs(p),
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}

func ToPlanDTOList(plans []*plan.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, ToPlanDTO(p))
	}
	return dtos
}

func toPriceDTOs(p *plan.Plan) []*PlanPriceDTO {
	prices := p.Prices()
	dtos := make([]*PlanPriceDTO, 0, len(prices))
	for _, price := range prices {
		dtos = append(dtos, &PlanPriceDTO{
			PlanID:       price.PlanID(),
			CurrencyCode: price.CurrencyCode(),
			Amount:       price.Amount(),
		})
	}
	return dtos
}
