package handlers

import (
	"context"

	"github.com/Bassir-Elhoussein/gymapp/internal/application/membership/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
)

// Use case interfaces for SubscriptionHandler

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*membership.Subscription, error)
}

type getSubscriptionUseCase interface {
	Execute(ctx context.Context, subscriptionID uint) (*membership.Subscription, error)
}

type listSubscriptionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSubscriptionsQuery) (*usecases.ListSubscriptionsResult, error)
}

type updateSubscriptionStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateSubscriptionStatusCommand) (*membership.Subscription, error)
}

type renewSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.RenewSubscriptionCommand) (*usecases.RenewSubscriptionResult, error)
}
