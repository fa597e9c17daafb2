package usecases

import (
	"context"
	"fmt"

	"luma/internal/application/plan/dto"
	"luma/internal/domain/plan"
	vo "luma/internal/domain/plan/valueobjects"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

// UpdatePlanCommand applies a partial update: nil fields keep their current
// values.
type UpdatePlanCommand struct {
	ID                  string
	Name                *string
	Description         *string
	MaxQuality          *string
	SimultaneousScreens *int
	DownloadLimit       *int
	ProfileLimit        *int
	BillingCycle        *string
	Prices              *[]dto.PriceInput
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "error", err, "plan_id", cmd.ID)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("plan not found", cmd.ID)
	}

	if cmd.Name != nil {
		if err := p.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError("invalid plan name", err.Error())
		}
	}
	if cmd.Description != nil {
		p.UpdateDescription(*cmd.Description)
	}
	if cmd.MaxQuality != nil {
		quality, err := vo.NewVideoQuality(*cmd.MaxQuality)
		if err != nil {
			return nil, errors.NewValidationError("invalid video quality", err.Error())
		}
		if err := p.SetMaxQuality(quality); err != nil {
			return nil, errors.NewValidationError("invalid video quality", err.Error())
		}
	}
	if cmd.SimultaneousScreens != nil {
		if err := p.SetSimultaneousScreens(*cmd.SimultaneousScreens); err != nil {
			return nil, errors.NewValidationError("invalid simultaneous screens", err.Error())
		}
	}
	if cmd.DownloadLimit != nil {
		if err := p.SetDownloadLimit(*cmd.DownloadLimit); err != nil {
			return nil, errors.NewValidationError("invalid download limit", err.Error())
		}
	}
	if cmd.ProfileLimit != nil {
		if err := p.SetProfileLimit(*cmd.ProfileLimit); err != nil {
			return nil, errors.NewValidationError("invalid profile limit", err.Error())
		}
	}
	if cmd.BillingCycle != nil {
		cycle, err := vo.NewBillingCycle(*cmd.BillingCycle)
		if err != nil {
			return nil, errors.NewValidationError("invalid billing cycle", err.Error())
		}
		if err := p.SetBillingCycle(cycle); err != nil {
			return nil, errors.NewValidationError("invalid billing cycle", err.Error())
		}
	}
	if cmd.Prices != nil {
		prices := make([]vo.PlanPrice, 0, len(*cmd.Prices))
		for _, in := range *cmd.Prices {
			price, err := vo.NewPlanPrice(p.ID(), in.CurrencyCode, in.Amount)
			if err != nil {
				return nil, errors.NewValidationError("invalid plan price", err.Error())
			}
			prices = append(prices, price)
		}
		p.SetPrices(prices)
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.ID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_id", p.ID())
	return dto.ToPlanDTO(p), nil
}
