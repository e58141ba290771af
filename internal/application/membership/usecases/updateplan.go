package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type UpdatePlanCommand struct {
	PlanID         uint
	Name           string
	Description    string
	PriceCents     int64
	DurationMonths int
	// Active toggles plan availability when non-nil.
	Active *bool
}

// UpdatePlanUseCase edits a plan's catalog entry. Price and duration changes
// only affect future subscriptions; existing ones keep their snapshot.
type UpdatePlanUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo membership.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*membership.Plan, error) {
	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	if cmd.Name != plan.Name() {
		taken, err := uc.planRepo.ExistsByName(ctx, cmd.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check plan name: %w", err)
		}
		if taken {
			return nil, apperrors.NewConflictError("a plan with this name already exists")
		}
	}

	if err := plan.UpdateDetails(cmd.Name, cmd.Description); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := plan.UpdatePricing(cmd.PriceCents, cmd.DurationMonths); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.Active != nil {
		if *cmd.Active {
			plan.Activate()
		} else {
			plan.Deactivate()
		}
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_id", plan.ID(), "name", plan.Name())

	return plan, nil
}
