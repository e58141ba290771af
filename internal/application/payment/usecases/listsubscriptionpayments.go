package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/payment"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type ListSubscriptionPaymentsResult struct {
	Payments        []*payment.Payment
	TotalPaidCents  int64
	RemainingCents  int64
	TotalPriceCents int64
}

// ListSubscriptionPaymentsUseCase returns a subscription's payment history
// together with the derived balance figures.
type ListSubscriptionPaymentsUseCase struct {
	paymentRepo      payment.Repository
	subscriptionRepo membership.SubscriptionRepository
	logger           logger.Interface
}

func NewListSubscriptionPaymentsUseCase(
	paymentRepo payment.Repository,
	subscriptionRepo membership.SubscriptionRepository,
	logger logger.Interface,
) *ListSubscriptionPaymentsUseCase {
	return &ListSubscriptionPaymentsUseCase{
		paymentRepo:      paymentRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionPaymentsUseCase) Execute(ctx context.Context, subscriptionID uint) (*ListSubscriptionPaymentsResult, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, apperrors.NewNotFoundError("subscription not found")
	}

	payments, err := uc.paymentRepo.GetBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListSubscriptionPaymentsResult{
		Payments:        payments,
		TotalPaidCents:  sub.AmountPaidCents(),
		RemainingCents:  sub.RemainingBalanceCents(),
		TotalPriceCents: sub.TotalPriceCents(),
	}, nil
}
