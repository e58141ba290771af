package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	ClientID  uint
	PlanID    uint
	StartDate time.Time // business date; defaults to today when zero
}

type CreateSubscriptionUseCase struct {
	subscriptionRepo membership.SubscriptionRepository
	planRepo         membership.PlanRepository
	clientRepo       client.Repository
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo membership.SubscriptionRepository,
	planRepo membership.PlanRepository,
	clientRepo client.Repository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		clientRepo:       clientRepo,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*membership.Subscription, error) {
	targetClient, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "client_id", cmd.ClientID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if targetClient == nil {
		return nil, apperrors.NewNotFoundError("client not found")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}
	if !plan.IsActive() {
		return nil, apperrors.NewValidationError("plan is not active")
	}

	// One active subscription per client. A second membership is a renewal,
	// not a parallel subscription. An active-status subscription whose end
	// date has passed but that the expiry sweep has not reached yet does not
	// block a new signup.
	existing, err := uc.subscriptionRepo.GetByClientID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to list client subscriptions", "error", err, "client_id", cmd.ClientID)
		return nil, fmt.Errorf("failed to list client subscriptions: %w", err)
	}
	today := biztime.Today()
	for _, sub := range existing {
		if sub.Status() == vo.StatusActive && sub.IsDateValidOn(today) {
			return nil, apperrors.NewConflictError("client already has an active subscription")
		}
	}

	startDate := cmd.StartDate
	if startDate.IsZero() {
		startDate = biztime.Today()
	} else {
		startDate = biztime.DateOf(startDate)
	}

	sub, err := membership.NewSubscription(cmd.ClientID, plan, startDate)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"client_id", cmd.ClientID,
		"plan_id", cmd.PlanID,
		"start_date", sub.StartDate(),
		"end_date", sub.EndDate(),
		"total_price_cents", sub.TotalPriceCents(),
	)

	return sub, nil
}
