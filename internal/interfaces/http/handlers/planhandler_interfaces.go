package handlers

import (
	"context"

	"github.com/Bassir-Elhoussein/gymapp/internal/application/membership/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*membership.Plan, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*membership.Plan, error)
}

type getPlanUseCase interface {
	Execute(ctx context.Context, planID uint) (*membership.Plan, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, query usecases.ListPlansQuery) (*usecases.ListPlansResult, error)
}
