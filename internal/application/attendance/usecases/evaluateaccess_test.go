package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	membershipvo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
)

func testClient(t *testing.T, id uint) *client.Client {
	t.Helper()
	c, err := client.NewClient("Test Client", "+212600000001", "", nil, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	return c
}

func testSubscription(t *testing.T, status membershipvo.SubscriptionStatus, start, end time.Time, paidCents int64) *membership.Subscription {
	t.Helper()
	sub, err := membership.ReconstructSubscription(10, 1, 100, status, start, end, 30000, paidCents, "MAD", 1, start, start)
	require.NoError(t, err)
	return sub
}

func newEvaluator() *EvaluateAccessUseCase {
	return NewEvaluateAccessUseCase(new(mockClientRepository), new(mockSubscriptionRepository), noopLogger{})
}

var (
	evalStart = biztime.Date(2024, time.March, 1)
	evalEnd   = biztime.Date(2024, time.March, 31)
	midMarch  = biztime.Date(2024, time.March, 15)
)

func TestDecide_ActivePaidWithinDates_Granted(t *testing.T) {
	uc := newEvaluator()
	sub := testSubscription(t, membershipvo.StatusActive, evalStart, evalEnd, 30000)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, midMarch)

	assert.Equal(t, valueobjects.AccessGranted, decision.Result)
	assert.True(t, decision.IsGranted())
	assert.Empty(t, decision.Reason)
	assert.Equal(t, sub, decision.Subscription)
}

func TestDecide_PartialPaymentStillGranted(t *testing.T) {
	uc := newEvaluator()
	sub := testSubscription(t, membershipvo.StatusActive, evalStart, evalEnd, 100)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, midMarch)

	assert.Equal(t, valueobjects.AccessGranted, decision.Result)
}

func TestDecide_ActiveUnpaid_DeniedUnpaid(t *testing.T) {
	uc := newEvaluator()
	sub := testSubscription(t, membershipvo.StatusActive, evalStart, evalEnd, 0)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, midMarch)

	assert.Equal(t, valueobjects.AccessDeniedUnpaid, decision.Result)
	assert.Equal(t, "No payment made for subscription", decision.Reason)
}

func TestDecide_PastEndDate_DeniedExpired(t *testing.T) {
	uc := newEvaluator()
	// still marked active: the background sweep has not run yet
	sub := testSubscription(t, membershipvo.StatusActive, evalStart, evalEnd, 30000)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, biztime.Date(2024, time.April, 1))

	assert.Equal(t, valueobjects.AccessDeniedExpired, decision.Result)
	assert.Equal(t, "Subscription expired on 2024-03-31", decision.Reason)
}

func TestDecide_ExpiredStatus_DeniedExpired(t *testing.T) {
	uc := newEvaluator()
	sub := testSubscription(t, membershipvo.StatusExpired, evalStart, evalEnd, 30000)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, midMarch)

	// The end date is still in the future here, so the reason names the
	// admin action rather than a date that has not passed.
	assert.Equal(t, valueobjects.AccessDeniedExpired, decision.Result)
	assert.Equal(t, "Subscription was expired by admin", decision.Reason)
}

func TestDecide_SuspendedPaid_DeniedSuspended(t *testing.T) {
	uc := newEvaluator()
	sub := testSubscription(t, membershipvo.StatusSuspended, evalStart, evalEnd, 30000)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, midMarch)

	assert.Equal(t, valueobjects.AccessDeniedSuspended, decision.Result)
	assert.Equal(t, "Subscription is suspended by admin", decision.Reason)
}

func TestDecide_SuspendedUnpaid_DeniedSuspended(t *testing.T) {
	uc := newEvaluator()
	sub := testSubscription(t, membershipvo.StatusSuspended, evalStart, evalEnd, 0)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, midMarch)

	// Suspension wins over the missing payment: the unpaid denial only
	// applies to active subscriptions.
	assert.Equal(t, valueobjects.AccessDeniedSuspended, decision.Result)
	assert.Equal(t, "Subscription is suspended by admin", decision.Reason)
}

func TestDecide_NoSubscription(t *testing.T) {
	uc := newEvaluator()

	decision := uc.decide(testClient(t, 1), nil, midMarch)

	assert.Equal(t, valueobjects.AccessDeniedNoSubscription, decision.Result)
	assert.Equal(t, "No active subscription found", decision.Reason)
	assert.Nil(t, decision.Subscription)
}

func TestDecide_Cancelled_TreatedAsNoSubscription(t *testing.T) {
	uc := newEvaluator()
	sub := testSubscription(t, membershipvo.StatusCancelled, evalStart, evalEnd, 30000)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, midMarch)

	assert.Equal(t, valueobjects.AccessDeniedNoSubscription, decision.Result)
	assert.Equal(t, "Subscription was cancelled", decision.Reason)
}

func TestDecide_NotStartedYet(t *testing.T) {
	uc := newEvaluator()
	sub := testSubscription(t, membershipvo.StatusActive, evalStart, evalEnd, 30000)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{sub}, biztime.Date(2024, time.February, 15))

	assert.Equal(t, valueobjects.AccessDeniedNoSubscription, decision.Result)
	assert.Equal(t, "Subscription has not started yet", decision.Reason)
}

func TestDecide_JudgesLatestSubscription(t *testing.T) {
	uc := newEvaluator()
	old := testSubscription(t, membershipvo.StatusExpired, biztime.Date(2024, time.January, 1), biztime.Date(2024, time.January, 31), 30000)
	current := testSubscription(t, membershipvo.StatusActive, evalStart, evalEnd, 30000)

	decision := uc.decide(testClient(t, 1), []*membership.Subscription{old, current}, midMarch)

	assert.Equal(t, valueobjects.AccessGranted, decision.Result)
	assert.Equal(t, current, decision.Subscription)
}

func TestEvaluateAccess_ExecuteOnUsesGivenDate(t *testing.T) {
	clientRepo := new(mockClientRepository)
	subRepo := new(mockSubscriptionRepository)

	sub := testSubscription(t, membershipvo.StatusActive, evalStart, evalEnd, 30000)
	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).Return([]*membership.Subscription{sub}, nil)

	uc := NewEvaluateAccessUseCase(clientRepo, subRepo, noopLogger{})

	within, err := uc.ExecuteOn(context.Background(), 1, midMarch)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.AccessGranted, within.Result)

	after, err := uc.ExecuteOn(context.Background(), 1, biztime.Date(2024, time.April, 10))
	require.NoError(t, err)
	assert.Equal(t, valueobjects.AccessDeniedExpired, after.Result)
}

func TestEvaluateAccess_ClientNotFound(t *testing.T) {
	clientRepo := new(mockClientRepository)
	subRepo := new(mockSubscriptionRepository)
	clientRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, nil)

	uc := NewEvaluateAccessUseCase(clientRepo, subRepo, noopLogger{})

	decision, err := uc.Execute(context.Background(), 404)

	assert.Nil(t, decision)
	assert.True(t, apperrors.IsNotFoundError(err))
}
