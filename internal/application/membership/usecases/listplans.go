package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type ListPlansQuery struct {
	// ActiveOnly hides deactivated plans, the default catalog view at the
	// front desk.
	ActiveOnly bool
	Page       int
	PageSize   int
}

type ListPlansResult struct {
	Plans []*membership.Plan
	Total int64
}

type ListPlansUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo membership.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) (*ListPlansResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	filter := membership.PlanFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.ActiveOnly {
		active := membership.PlanStatusActive
		filter.Status = &active
	}

	plans, total, err := uc.planRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &ListPlansResult{Plans: plans, Total: total}, nil
}
