package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name           string
	Description    string
	PriceCents     int64
	Currency       string
	DurationMonths int
}

type CreatePlanUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo membership.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*membership.Plan, error) {
	exists, err := uc.planRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check plan name", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to check plan name: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a plan with this name already exists")
	}

	plan, err := membership.NewPlan(cmd.Name, cmd.Description, cmd.PriceCents, cmd.Currency, cmd.DurationMonths)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("a plan with this name already exists")
		}
		uc.logger.Errorw("failed to create plan", "error", err)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created",
		"plan_id", plan.ID(),
		"name", plan.Name(),
		"price_cents", plan.PriceCents(),
		"duration_months", plan.DurationMonths(),
	)

	return plan, nil
}
