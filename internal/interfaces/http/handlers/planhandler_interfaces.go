package handlers

import (
	"context"

	plandto "luma/internal/application/plan/dto"
	"luma/internal/application/plan/usecases"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*plandto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*plandto.PlanDTO, error)
}

type togglePlanStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.TogglePlanStatusCommand) (*plandto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, planID string) error
}

type getPlanUseCase interface {
	Execute(ctx context.Context, planID string) (*plandto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context) ([]*plandto.PlanDTO, error)
}

type getPublicPlansUseCase interface {
	Execute(ctx context.Context) ([]*plandto.PublicPlanDTO, error)
}
