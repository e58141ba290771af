package handlers

import (
	"context"

	"github.com/Bassir-Elhoussein/gymapp/internal/application/payment/usecases"
)

// Use case interfaces for PaymentHandler

type recordPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.RecordPaymentCommand) (*usecases.RecordPaymentResult, error)
}

type listSubscriptionPaymentsUseCase interface {
	Execute(ctx context.Context, subscriptionID uint) (*usecases.ListSubscriptionPaymentsResult, error)
}
