package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	membershipvo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

// AccessDecision is the outcome of evaluating a client at the door.
type AccessDecision struct {
	Result       valueobjects.AccessResult
	Reason       string // empty when granted
	Client       *client.Client
	Subscription *membership.Subscription // nil when the client has none
}

func (d *AccessDecision) IsGranted() bool {
	return d.Result.IsGranted()
}

// EvaluateAccessUseCase decides whether a client may enter. It only reads;
// recording the attempt is the check-in use case's job, so a status display
// can poll this without growing the attendance log.
//
// The checks run in a fixed order: missing or never-valid subscription first,
// then date expiry, then suspension, then payment. Expiry is judged on dates
// directly, so a subscription the background sweep has not reached yet is
// still denied.
type EvaluateAccessUseCase struct {
	clientRepo       client.Repository
	subscriptionRepo membership.SubscriptionRepository
	logger           logger.Interface
}

func NewEvaluateAccessUseCase(
	clientRepo client.Repository,
	subscriptionRepo membership.SubscriptionRepository,
	logger logger.Interface,
) *EvaluateAccessUseCase {
	return &EvaluateAccessUseCase{
		clientRepo:       clientRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute evaluates the client for the current business day.
func (uc *EvaluateAccessUseCase) Execute(ctx context.Context, clientID uint) (*AccessDecision, error) {
	return uc.ExecuteOn(ctx, clientID, biztime.Today())
}

// ExecuteOn evaluates the client as of a given business date, e.g. to answer
// "would this membership still admit them next Monday".
func (uc *EvaluateAccessUseCase) ExecuteOn(ctx context.Context, clientID uint, onDate time.Time) (*AccessDecision, error) {
	targetClient, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "client_id", clientID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if targetClient == nil {
		return nil, apperrors.NewNotFoundError("client not found")
	}

	subs, err := uc.subscriptionRepo.GetByClientID(ctx, clientID)
	if err != nil {
		uc.logger.Errorw("failed to get client subscriptions", "error", err, "client_id", clientID)
		return nil, fmt.Errorf("failed to get client subscriptions: %w", err)
	}

	decision := uc.decide(targetClient, subs, biztime.DateOf(onDate))

	uc.logger.Debugw("access evaluated",
		"client_id", clientID,
		"on_date", onDate.Format("2006-01-02"),
		"result", decision.Result.String(),
		"reason", decision.Reason,
	)

	return decision, nil
}

func (uc *EvaluateAccessUseCase) decide(c *client.Client, subs []*membership.Subscription, today time.Time) *AccessDecision {
	sub := mostRelevantSubscription(subs)
	if sub == nil {
		return &AccessDecision{
			Result: valueobjects.AccessDeniedNoSubscription,
			Reason: "No active subscription found",
			Client: c,
		}
	}

	deny := func(result valueobjects.AccessResult, reason string) *AccessDecision {
		return &AccessDecision{Result: result, Reason: reason, Client: c, Subscription: sub}
	}

	if sub.Status() == membershipvo.StatusCancelled {
		return deny(valueobjects.AccessDeniedNoSubscription, "Subscription was cancelled")
	}
	if today.Before(sub.StartDate()) {
		return deny(valueobjects.AccessDeniedNoSubscription, "Subscription has not started yet")
	}
	if today.After(sub.EndDate()) {
		reason := fmt.Sprintf("Subscription expired on %s", sub.EndDate().Format("2006-01-02"))
		return deny(valueobjects.AccessDeniedExpired, reason)
	}
	if sub.Status() == membershipvo.StatusExpired {
		return deny(valueobjects.AccessDeniedExpired, "Subscription was expired by admin")
	}
	// The unpaid check only applies to active subscriptions; a suspended one
	// is reported as suspended whether or not it was paid.
	if sub.Status() == membershipvo.StatusSuspended {
		return deny(valueobjects.AccessDeniedSuspended, "Subscription is suspended by admin")
	}
	if !sub.HasPayment() {
		return deny(valueobjects.AccessDeniedUnpaid, "No payment made for subscription")
	}

	return &AccessDecision{
		Result:       valueobjects.AccessGranted,
		Client:       c,
		Subscription: sub,
	}
}

// mostRelevantSubscription picks the subscription to judge the client by:
// the one with the latest end date, preferring active status on ties. The
// single-active creation policy keeps this unambiguous in practice.
func mostRelevantSubscription(subs []*membership.Subscription) *membership.Subscription {
	var best *membership.Subscription
	for _, sub := range subs {
		if best == nil {
			best = sub
			continue
		}
		if sub.EndDate().After(best.EndDate()) {
			best = sub
			continue
		}
		if sub.EndDate().Equal(best.EndDate()) && sub.Status() == membershipvo.StatusActive {
			best = sub
		}
	}
	return best
}
