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

type CreatePlanCommand struct {
	Name                string
	Description         string
	MaxQuality          string
	SimultaneousScreens int
	DownloadLimit       int
	ProfileLimit        int
	BillingCycle        string
	Prices              []dto.PriceInput
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	maxQuality, err := vo.NewVideoQuality(cmd.MaxQuality)
	if err != nil {
		return nil, errors.NewValidationError("invalid video quality", err.Error())
	}

	billingCycle, err := vo.NewBillingCycle(cmd.BillingCycle)
	if err != nil {
		return nil, errors.NewValidationError("invalid billing cycle", err.Error())
	}

	p, err := plan.NewPlan(cmd.Name, cmd.Description, maxQuality, cmd.SimultaneousScreens, cmd.DownloadLimit, cmd.ProfileLimit, billingCycle)
	if err != nil {
		return nil, errors.NewValidationError("invalid plan", err.Error())
	}

	if len(cmd.Prices) > 0 {
		// Back-references are assigned once the store hands out the id;
		// whatever the caller sent for them is discarded here.
		prices := make([]vo.PlanPrice, 0, len(cmd.Prices))
		for _, in := range cmd.Prices {
			price, err := vo.NewPlanPrice("", in.CurrencyCode, in.Amount)
			if err != nil {
				return nil, errors.NewValidationError("invalid plan price", err.Error())
			}
			prices = append(prices, price)
		}
		p.SetPrices(prices)
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_id", p.ID(), "name", p.Name())
	return dto.ToPlanDTO(p), nil
}
