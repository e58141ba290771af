package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
)

// --- helpers ---

func newMonthlyPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := NewPlan("Monthly", "One month access", 30000, "MAD", 1)
	require.NoError(t, err)
	require.NoError(t, plan.SetID(100))
	return plan
}

func newActiveSubscription(t *testing.T, start time.Time) *Subscription {
	t.Helper()
	sub, err := NewSubscription(1, newMonthlyPlan(t), start)
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}

func reconstructWithStatus(t *testing.T, status vo.SubscriptionStatus) *Subscription {
	t.Helper()
	start := biztime.Date(2024, time.January, 1)
	end := biztime.Date(2024, time.January, 31)
	sub, err := ReconstructSubscription(1, 1, 100, status, start, end, 30000, 0, "MAD", 1, start, start)
	require.NoError(t, err)
	return sub
}

// =====================================================================
// TestNewSubscription_*
// =====================================================================

func TestNewSubscription_ValidInput(t *testing.T) {
	start := biztime.Date(2024, time.January, 15)
	plan := newMonthlyPlan(t)

	sub, err := NewSubscription(1, plan, start)

	require.NoError(t, err)
	require.NotNil(t, sub)

	assert.Equal(t, uint(1), sub.ClientID())
	assert.Equal(t, uint(100), sub.PlanID())
	assert.Equal(t, vo.StatusActive, sub.Status(), "new subscriptions start active")
	assert.Equal(t, start, sub.StartDate())
	assert.Equal(t, biztime.Date(2024, time.February, 14), sub.EndDate(), "end date is inclusive, day before anniversary")
	assert.Equal(t, int64(30000), sub.TotalPriceCents(), "price snapshotted from plan")
	assert.Equal(t, "MAD", sub.Currency())
	assert.Zero(t, sub.AmountPaidCents())
	assert.Equal(t, 1, sub.Version())
}

func TestNewSubscription_ZeroClientID(t *testing.T) {
	sub, err := NewSubscription(0, newMonthlyPlan(t), biztime.Today())

	assert.Error(t, err)
	assert.Nil(t, sub)
	assert.Contains(t, err.Error(), "client ID is required")
}

func TestNewSubscription_NilPlan(t *testing.T) {
	sub, err := NewSubscription(1, nil, biztime.Today())

	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestNewSubscription_UnsavedPlan(t *testing.T) {
	plan, err := NewPlan("Monthly", "", 30000, "MAD", 1)
	require.NoError(t, err)

	sub, err := NewSubscription(1, plan, biztime.Today())

	assert.Error(t, err)
	assert.Nil(t, sub)
	assert.Contains(t, err.Error(), "plan ID is required")
}

func TestNewSubscription_PriceSnapshotSurvivesPlanEdit(t *testing.T) {
	plan := newMonthlyPlan(t)
	sub, err := NewSubscription(1, plan, biztime.Date(2024, time.March, 1))
	require.NoError(t, err)

	require.NoError(t, plan.UpdatePricing(50000, 3))

	assert.Equal(t, int64(30000), sub.TotalPriceCents())
	assert.Equal(t, biztime.Date(2024, time.March, 31), sub.EndDate())
}

// =====================================================================
// End date arithmetic
// =====================================================================

func TestEndDate_OneMonthFromMarchFirst(t *testing.T) {
	sub := newActiveSubscription(t, biztime.Date(2024, time.March, 1))

	assert.Equal(t, biztime.Date(2024, time.March, 31), sub.EndDate())
}

func TestEndDate_ThreeMonthPlan(t *testing.T) {
	plan, err := NewPlan("Quarterly", "", 80000, "MAD", 3)
	require.NoError(t, err)
	require.NoError(t, plan.SetID(101))

	sub, err := NewSubscription(1, plan, biztime.Date(2024, time.January, 15))
	require.NoError(t, err)

	assert.Equal(t, biztime.Date(2024, time.April, 14), sub.EndDate())
}

func TestEndDate_MonthEndNormalization(t *testing.T) {
	// Jan 31 + 1 month normalizes to Mar 2 (2025 is not a leap year),
	// minus one day gives Mar 1.
	sub := newActiveSubscription(t, biztime.Date(2025, time.January, 31))

	assert.Equal(t, biztime.Date(2025, time.March, 1), sub.EndDate())
}

// =====================================================================
// Payment ledger
// =====================================================================

func TestApplyPayment_AccumulatesAndBumpsVersion(t *testing.T) {
	sub := newActiveSubscription(t, biztime.Today())

	require.NoError(t, sub.ApplyPayment(10000))
	require.NoError(t, sub.ApplyPayment(5000))

	assert.Equal(t, int64(15000), sub.AmountPaidCents())
	assert.Equal(t, int64(15000), sub.RemainingBalanceCents())
	assert.Equal(t, 3, sub.Version())
}

func TestApplyPayment_RejectsNonPositiveAmount(t *testing.T) {
	sub := newActiveSubscription(t, biztime.Today())

	assert.Error(t, sub.ApplyPayment(0))
	assert.Error(t, sub.ApplyPayment(-100))
	assert.Zero(t, sub.AmountPaidCents())
}

func TestApplyPayment_OverpaymentYieldsCredit(t *testing.T) {
	sub := newActiveSubscription(t, biztime.Today())

	require.NoError(t, sub.ApplyPayment(35000))

	assert.Equal(t, int64(-5000), sub.RemainingBalanceCents(), "overpayment shows as negative balance")
	assert.True(t, sub.IsFullyPaid())
}

func TestHasPayment_AnyPositivePaymentCounts(t *testing.T) {
	sub := newActiveSubscription(t, biztime.Today())
	assert.False(t, sub.HasPayment())

	require.NoError(t, sub.ApplyPayment(100))

	assert.True(t, sub.HasPayment())
	assert.False(t, sub.IsFullyPaid())
}

func TestPaymentPercentage(t *testing.T) {
	sub := newActiveSubscription(t, biztime.Today())
	require.NoError(t, sub.ApplyPayment(15000))

	assert.InDelta(t, 50.0, sub.PaymentPercentage(), 0.001)
}

func TestPaymentPercentage_ZeroPricePlan(t *testing.T) {
	plan, err := NewPlan("Trial", "", 0, "MAD", 1)
	require.NoError(t, err)
	require.NoError(t, plan.SetID(102))
	sub, err := NewSubscription(1, plan, biztime.Today())
	require.NoError(t, err)

	assert.True(t, sub.IsFullyPaid())
	assert.Zero(t, sub.PaymentPercentage())
}

// =====================================================================
// Validity window
// =====================================================================

func TestIsDateValidOn_InclusiveBounds(t *testing.T) {
	sub := newActiveSubscription(t, biztime.Date(2024, time.March, 1))

	assert.True(t, sub.IsDateValidOn(biztime.Date(2024, time.March, 1)))
	assert.True(t, sub.IsDateValidOn(biztime.Date(2024, time.March, 31)))
	assert.False(t, sub.IsDateValidOn(biztime.Date(2024, time.February, 29)))
	assert.False(t, sub.IsDateValidOn(biztime.Date(2024, time.April, 1)))
}

func TestIsCurrentOn_RequiresActiveStatus(t *testing.T) {
	date := biztime.Date(2024, time.January, 15)

	assert.True(t, reconstructWithStatus(t, vo.StatusActive).IsCurrentOn(date))
	assert.False(t, reconstructWithStatus(t, vo.StatusSuspended).IsCurrentOn(date))
	assert.False(t, reconstructWithStatus(t, vo.StatusExpired).IsCurrentOn(date))
	assert.False(t, reconstructWithStatus(t, vo.StatusCancelled).IsCurrentOn(date))
}

// =====================================================================
// Status transitions
// =====================================================================

func TestTransitionTo_ActiveToSuspendedAndBack(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusActive)

	require.NoError(t, sub.TransitionTo(vo.StatusSuspended))
	assert.Equal(t, vo.StatusSuspended, sub.Status())

	require.NoError(t, sub.TransitionTo(vo.StatusActive))
	assert.Equal(t, vo.StatusActive, sub.Status())
}

func TestTransitionTo_TerminalStatesRejectChanges(t *testing.T) {
	expired := reconstructWithStatus(t, vo.StatusExpired)
	assert.Error(t, expired.TransitionTo(vo.StatusActive))
	assert.Error(t, expired.TransitionTo(vo.StatusSuspended))

	cancelled := reconstructWithStatus(t, vo.StatusCancelled)
	assert.Error(t, cancelled.TransitionTo(vo.StatusActive))
	assert.Error(t, cancelled.TransitionTo(vo.StatusExpired))
}

func TestTransitionTo_SameStatusIsNoOp(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusActive)
	version := sub.Version()

	require.NoError(t, sub.TransitionTo(vo.StatusActive))

	assert.Equal(t, version, sub.Version())
}

func TestTransitionTo_InvalidStatus(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusActive)

	assert.Error(t, sub.TransitionTo(vo.SubscriptionStatus("paused")))
}

func TestMarkAsExpired_ActiveOnly(t *testing.T) {
	sub := reconstructWithStatus(t, vo.StatusActive)

	require.NoError(t, sub.MarkAsExpired())
	assert.Equal(t, vo.StatusExpired, sub.Status())

	// idempotent on already expired
	require.NoError(t, sub.MarkAsExpired())
	assert.Equal(t, vo.StatusExpired, sub.Status())
}

func TestMarkAsExpired_SkipsSuspendedAndCancelled(t *testing.T) {
	suspended := reconstructWithStatus(t, vo.StatusSuspended)
	assert.Error(t, suspended.MarkAsExpired())
	assert.Equal(t, vo.StatusSuspended, suspended.Status())

	cancelled := reconstructWithStatus(t, vo.StatusCancelled)
	assert.Error(t, cancelled.MarkAsExpired())
	assert.Equal(t, vo.StatusCancelled, cancelled.Status())
}

func TestForceExpire_IgnoresTransitionTable(t *testing.T) {
	for _, status := range []vo.SubscriptionStatus{vo.StatusActive, vo.StatusSuspended, vo.StatusCancelled} {
		sub := reconstructWithStatus(t, status)
		sub.ForceExpire()
		assert.Equal(t, vo.StatusExpired, sub.Status(), "status %s should force-expire", status)
	}
}

// =====================================================================
// Reconstruction
// =====================================================================

func TestReconstructSubscription_RejectsInvalidDates(t *testing.T) {
	start := biztime.Date(2024, time.January, 31)
	end := biztime.Date(2024, time.January, 1)

	sub, err := ReconstructSubscription(1, 1, 100, vo.StatusActive, start, end, 30000, 0, "MAD", 1, start, start)

	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestReconstructSubscription_RejectsInvalidStatus(t *testing.T) {
	date := biztime.Date(2024, time.January, 1)

	sub, err := ReconstructSubscription(1, 1, 100, vo.SubscriptionStatus("frozen"), date, date, 30000, 0, "MAD", 1, date, date)

	assert.Error(t, err)
	assert.Nil(t, sub)
}
