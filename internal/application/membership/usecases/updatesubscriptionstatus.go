package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type UpdateSubscriptionStatusCommand struct {
	SubscriptionID uint
	Status         string
}

// UpdateSubscriptionStatusUseCase applies an administrative status change
// (suspend, resume, cancel) validated against the transition table.
type UpdateSubscriptionStatusUseCase struct {
	subscriptionRepo membership.SubscriptionRepository
	logger           logger.Interface
}

func NewUpdateSubscriptionStatusUseCase(
	subscriptionRepo membership.SubscriptionRepository,
	logger logger.Interface,
) *UpdateSubscriptionStatusUseCase {
	return &UpdateSubscriptionStatusUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionStatusUseCase) Execute(ctx context.Context, cmd UpdateSubscriptionStatusCommand) (*membership.Subscription, error) {
	target := vo.SubscriptionStatus(cmd.Status)
	if !vo.ValidStatuses[target] {
		return nil, apperrors.NewValidationError("invalid subscription status", cmd.Status)
	}

	sub, err := uc.subscriptionRepo.GetByID(ctx, cmd.SubscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	previous := sub.Status()
	previousVersion := sub.Version()
	if err := sub.TransitionTo(target); err != nil {
		if errors.Is(err, membership.ErrInvalidStatusTransition) {
			return nil, apperrors.NewConflictError(err.Error())
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Transitioning to the current status is a no-op; nothing to persist.
	if sub.Version() == previousVersion {
		return sub, nil
	}

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		if errors.Is(err, membership.ErrSubscriptionModified) {
			return nil, apperrors.NewConflictError("subscription was modified concurrently, retry the status change")
		}
		uc.logger.Errorw("failed to update subscription status", "error", err, "subscription_id", cmd.SubscriptionID)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription status changed",
		"subscription_id", sub.ID(),
		"from", previous.String(),
		"to", target.String(),
	)

	return sub, nil
}
