package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

// ExpireSubscriptionsUseCase marks active subscriptions whose end date has
// passed as expired. It runs as a periodic background job and is idempotent:
// a second run over the same data finds nothing to change. Access evaluation
// checks dates directly, so a subscription the sweep has not reached yet is
// still denied at the door.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo membership.SubscriptionRepository
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo membership.SubscriptionRepository,
	logger logger.Interface,
) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute returns the number of subscriptions marked as expired.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	today := biztime.Today()

	expired, err := uc.subscriptionRepo.FindExpired(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired subscriptions: %w", err)
	}

	if len(expired) == 0 {
		return 0, nil
	}

	uc.logger.Infow("found subscriptions past end date", "count", len(expired))

	marked := 0
	for _, sub := range expired {
		previousVersion := sub.Version()
		if err := sub.MarkAsExpired(); err != nil {
			uc.logger.Warnw("skipping subscription not eligible for expiry",
				"subscription_id", sub.ID(),
				"status", sub.Status().String(),
				"error", err,
			)
			continue
		}
		if sub.Version() == previousVersion {
			continue
		}

		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			if errors.Is(err, membership.ErrSubscriptionModified) {
				// Another writer touched the row since we read it; the next
				// sweep picks it up if it is still past its end date.
				uc.logger.Debugw("subscription changed concurrently, skipping",
					"subscription_id", sub.ID(),
				)
				continue
			}
			uc.logger.Errorw("failed to update expired subscription",
				"subscription_id", sub.ID(),
				"error", err,
			)
			continue
		}

		marked++
		uc.logger.Debugw("subscription marked as expired",
			"subscription_id", sub.ID(),
			"client_id", sub.ClientID(),
			"end_date", sub.EndDate(),
		)
	}

	return marked, nil
}
