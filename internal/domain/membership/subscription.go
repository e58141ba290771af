package membership

import (
	"fmt"
	"time"

	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
)

// Subscription represents the membership aggregate root. Start and end dates
// are business dates normalized to midnight UTC; the end date is inclusive.
// The price is snapshotted from the plan at creation and never follows later
// plan edits. amountPaid accumulates the payment ledger; the remaining
// balance is always derived as totalPrice − amountPaid and may go negative
// when the client overpays (treated as credit).
type Subscription struct {
	id              uint
	clientID        uint
	planID          uint
	status          vo.SubscriptionStatus
	startDate       time.Time
	endDate         time.Time
	totalPriceCents int64
	amountPaidCents int64
	currency        string
	version         int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSubscription creates a new active subscription for a client on the given
// plan. The end date and price snapshot come from the plan.
func NewSubscription(clientID uint, plan *Plan, startDate time.Time) (*Subscription, error) {
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}
	if plan.ID() == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}

	now := time.Now().UTC()
	return &Subscription{
		clientID:        clientID,
		planID:          plan.ID(),
		status:          vo.StatusActive,
		startDate:       startDate,
		endDate:         plan.EndDateFor(startDate),
		totalPriceCents: plan.PriceCents(),
		amountPaidCents: 0,
		currency:        plan.Currency(),
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id, clientID, planID uint,
	status vo.SubscriptionStatus,
	startDate, endDate time.Time,
	totalPriceCents, amountPaidCents int64,
	currency string,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	return &Subscription{
		id:              id,
		clientID:        clientID,
		planID:          planID,
		status:          status,
		startDate:       startDate,
		endDate:         endDate,
		totalPriceCents: totalPriceCents,
		amountPaidCents: amountPaidCents,
		currency:        currency,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) ClientID() uint                { return s.clientID }
func (s *Subscription) PlanID() uint                  { return s.planID }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) StartDate() time.Time          { return s.startDate }
func (s *Subscription) EndDate() time.Time            { return s.endDate }
func (s *Subscription) TotalPriceCents() int64        { return s.totalPriceCents }
func (s *Subscription) AmountPaidCents() int64        { return s.amountPaidCents }
func (s *Subscription) Currency() string              { return s.currency }
func (s *Subscription) Version() int                  { return s.version }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// RemainingBalanceCents returns totalPrice − amountPaid. Negative means the
// client holds credit from overpayment.
func (s *Subscription) RemainingBalanceCents() int64 {
	return s.totalPriceCents - s.amountPaidCents
}

// IsFullyPaid reports whether the outstanding balance is cleared.
func (s *Subscription) IsFullyPaid() bool {
	return s.RemainingBalanceCents() <= 0
}

// HasPayment reports whether at least one payment was ever recorded.
// Access is granted on any positive payment, not full payment.
func (s *Subscription) HasPayment() bool {
	return s.amountPaidCents > 0
}

// PaymentPercentage returns how much of the total price has been paid.
// A zero-price subscription reports 0 rather than dividing by zero.
func (s *Subscription) PaymentPercentage() float64 {
	if s.totalPriceCents == 0 {
		return 0
	}
	return float64(s.amountPaidCents) / float64(s.totalPriceCents) * 100
}

// ApplyPayment records a payment against the outstanding balance. The amount
// must be positive; overpayment is allowed and drives the balance negative.
func (s *Subscription) ApplyPayment(amountCents int64) error {
	if amountCents <= 0 {
		return fmt.Errorf("payment amount must be positive")
	}

	s.amountPaidCents += amountCents
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// IsDateValidOn reports whether date falls inside [startDate, endDate].
func (s *Subscription) IsDateValidOn(date time.Time) bool {
	return !date.Before(s.startDate) && !date.After(s.endDate)
}

// IsCurrentOn reports whether the subscription admits the client on the given
// business date: active status and the date inside the validity window.
func (s *Subscription) IsCurrentOn(date time.Time) bool {
	return s.status.CanUseService() && s.IsDateValidOn(date)
}

// TransitionTo applies an administrative status change, validated against the
// permitted transition table.
func (s *Subscription) TransitionTo(target vo.SubscriptionStatus) error {
	if !vo.ValidStatuses[target] {
		return fmt.Errorf("invalid subscription status: %s", target)
	}
	if s.status == target {
		return nil
	}
	if !s.status.CanTransitionTo(target) {
		return ErrInvalidTransition(s.status.String(), target.String())
	}

	s.status = target
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// MarkAsExpired transitions an active subscription to expired. Used by the
// date-based expiry sweep; suspended and cancelled subscriptions are left
// untouched.
func (s *Subscription) MarkAsExpired() error {
	if s.status == vo.StatusExpired {
		return nil
	}
	if s.status != vo.StatusActive {
		return fmt.Errorf("cannot expire subscription with status %s", s.status)
	}

	s.status = vo.StatusExpired
	s.updatedAt = time.Now().UTC()
	s.version++

	return nil
}

// ForceExpire closes out the subscription regardless of its current status.
// Only the renewal path uses it: renewing supersedes whatever state the
// outgoing subscription was in.
func (s *Subscription) ForceExpire() {
	if s.status == vo.StatusExpired {
		return
	}

	s.status = vo.StatusExpired
	s.updatedAt = time.Now().UTC()
	s.version++
}

// Validate performs domain-level validation
func (s *Subscription) Validate() error {
	if s.clientID == 0 {
		return fmt.Errorf("client ID is required")
	}
	if s.planID == 0 {
		return fmt.Errorf("plan ID is required")
	}
	if !vo.ValidStatuses[s.status] {
		return fmt.Errorf("invalid status: %s", s.status)
	}
	if s.endDate.Before(s.startDate) {
		return fmt.Errorf("end date must not be before start date")
	}
	return nil
}
