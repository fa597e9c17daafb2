package usecases

import (
	"context"
	"fmt"

	"luma/internal/application/plan/dto"
	"luma/internal/domain/plan"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

type TogglePlanStatusCommand struct {
	ID     string
	Active bool
}

type TogglePlanStatusUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewTogglePlanStatusUseCase(planRepo plan.Repository, logger logger.Interface) *TogglePlanStatusUseCase {
	return &TogglePlanStatusUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *TogglePlanStatusUseCase) Execute(ctx context.Context, cmd TogglePlanStatusCommand) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.ToggleStatus(ctx, cmd.ID, cmd.Active)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to toggle plan status", "error", err, "plan_id", cmd.ID)
		return nil, fmt.Errorf("failed to toggle plan status: %w", err)
	}

	uc.logger.Infow("plan status toggled", "plan_id", cmd.ID, "active", cmd.Active)
	return dto.ToPlanDTO(p), nil
}
