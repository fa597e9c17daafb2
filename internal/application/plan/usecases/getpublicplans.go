package usecases

import (
	"context"
	"fmt"

	"luma/internal/application/plan/dto"
	"luma/internal/domain/plan"
	"luma/internal/shared/logger"
	"luma/internal/shared/services/markdown"
)

type GetPublicPlansUseCase struct {
	planRepo plan.Repository
	markdown markdown.Service
	logger   logger.Interface
}

func NewGetPublicPlansUseCase(planRepo plan.Repository, markdownSvc markdown.Service, logger logger.Interface) *GetPublicPlansUseCase {
	return &GetPublicPlansUseCase{
		planRepo: planRepo,
		markdown: markdownSvc,
		logger:   logger,
	}
}

// Execute returns the active catalog with descriptions rendered to
// sanitized HTML. A plan whose description fails to render is still
// returned, with an escaped plain-text description.
func (uc *GetPublicPlansUseCase) Execute(ctx context.Context) ([]*dto.PublicPlanDTO, error) {
	plans, err := uc.planRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active plans", "error", err)
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}

	dtos := make([]*dto.PublicPlanDTO, 0, len(plans))
	for _, p := range plans {
		descriptionHTML, err := uc.markdown.ToHTMLSanitized(p.Description())
		if err != nil {
			uc.logger.Warnw("failed to render plan description", "plan_id", p.ID(), "error", err)
			descriptionHTML = uc.markdown.Sanitize(p.Description())
		}

		planDTO := dto.ToPlanDTO(p)
		dtos = append(dtos, &dto.PublicPlanDTO{
			ID:                  planDTO.ID,
			Name:                planDTO.Name,
			DescriptionHTML:     descriptionHTML,
			MaxQuality:          planDTO.MaxQuality,
			SimultaneousScreens: planDTO.SimultaneousScreens,
			DownloadLimit:       planDTO.DownloadLimit,
			ProfileLimit:        planDTO.ProfileLimit,
			BillingCycle:        planDTO.BillingCycle,
			Prices:              planDTO.Prices,
		})
	}

	return dtos, nil
}
