package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/db"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type RenewSubscriptionCommand struct {
	SubscriptionID uint
	// PlanID selects a different plan for the new period. Zero keeps the
	// outgoing subscription's plan.
	PlanID uint
}

type RenewSubscriptionResult struct {
	Old *membership.Subscription
	New *membership.Subscription
}

// RenewSubscriptionUseCase closes out the current subscription and opens a new
// period. The outgoing subscription is force-expired regardless of its status;
// the new period starts the day after the old end date, or today when the old
// subscription already lapsed. Any unpaid balance stays on the old record.
type RenewSubscriptionUseCase struct {
	subscriptionRepo membership.SubscriptionRepository
	planRepo         membership.PlanRepository
	txManager        *db.TransactionManager
	logger           logger.Interface
}

func NewRenewSubscriptionUseCase(
	subscriptionRepo membership.SubscriptionRepository,
	planRepo membership.PlanRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, cmd RenewSubscriptionCommand) (*RenewSubscriptionResult, error) {
	old, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if old == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	planID := cmd.PlanID
	if planID == 0 {
		planID = old.PlanID()
	}

	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", planID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}
	if !plan.IsActive() {
		return nil, apperrors.NewValidationError("plan is not active")
	}

	newStart := renewalStartDate(old.EndDate(), biztime.Today())

	newSub, err := membership.NewSubscription(old.ClientID(), plan, newStart)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		previousVersion := old.Version()
		old.ForceExpire()
		// ForceExpire is a no-op on an already-expired subscription; only
		// persist when it actually changed state.
		if old.Version() != previousVersion {
			if err := uc.subscriptionRepo.Update(txCtx, old); err != nil {
				return fmt.Errorf("failed to expire old subscription: %w", err)
			}
		}
		if err := uc.subscriptionRepo.Create(txCtx, newSub); err != nil {
			return fmt.Errorf("failed to create renewal subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, membership.ErrSubscriptionModified) {
			return nil, apperrors.NewConflictError("subscription was modified concurrently, retry the renewal")
		}
		uc.logger.Errorw("failed to renew subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, err
	}

	uc.logger.Infow("subscription renewed",
		"old_subscription_id", old.ID(),
		"new_subscription_id", newSub.ID(),
		"client_id", old.ClientID(),
		"plan_id", planID,
		"new_start_date", newSub.StartDate(),
		"new_end_date", newSub.EndDate(),
	)

	return &RenewSubscriptionResult{Old: old, New: newSub}, nil
}

// renewalStartDate gives a seamless continuation when renewing early and a
// fresh start from today when the old period already ended.
func renewalStartDate(oldEnd, today time.Time) time.Time {
	start := oldEnd.AddDate(0, 0, 1)
	if start.Before(today) {
		return today
	}
	return start
}
