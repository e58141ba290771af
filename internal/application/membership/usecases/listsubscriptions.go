package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type ListSubscriptionsQuery struct {
	ClientID *uint
	PlanID   *uint
	Status   string
	Page     int
	PageSize int
}

type ListSubscriptionsResult struct {
	Subscriptions []*membership.Subscription
	Total         int64
}

type ListSubscriptionsUseCase struct {
	subscriptionRepo membership.SubscriptionRepository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo membership.SubscriptionRepository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) (*ListSubscriptionsResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	filter := membership.SubscriptionFilter{
		ClientID: query.ClientID,
		PlanID:   query.PlanID,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status := vo.SubscriptionStatus(query.Status)
		if !vo.ValidStatuses[status] {
			return nil, apperrors.NewValidationError("invalid subscription status", query.Status)
		}
		filter.Status = &status
	}

	subs, total, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return &ListSubscriptionsResult{Subscriptions: subs, Total: total}, nil
}
