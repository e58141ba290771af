package payment

import (
	"fmt"
	"time"

	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/payment/valueobjects"
)

// Payment is one entry in a subscription's append-only ledger. A payment is
// immutable after creation: no mutation methods exist beyond SetID, and the
// repository exposes no update or delete.
type Payment struct {
	id             uint
	subscriptionID uint
	amount         vo.Money
	method         vo.PaymentMethod
	notes          *string
	processedByID  *uint
	paymentDate    time.Time
	createdAt      time.Time
}

// NewPayment creates a ledger entry. The method is an explicit parameter;
// callers that want the front-desk default pass vo.DefaultPaymentMethod.
func NewPayment(subscriptionID uint, amount vo.Money, method vo.PaymentMethod, notes *string, processedByID *uint) (*Payment, error) {
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	now := time.Now().UTC()
	return &Payment{
		subscriptionID: subscriptionID,
		amount:         amount,
		method:         method,
		notes:          notes,
		processedByID:  processedByID,
		paymentDate:    now,
		createdAt:      now,
	}, nil
}

// ReconstructPayment reconstructs a payment from persistence
func ReconstructPayment(
	id, subscriptionID uint,
	amount vo.Money,
	method vo.PaymentMethod,
	notes *string,
	processedByID *uint,
	paymentDate, createdAt time.Time,
) (*Payment, error) {
	if id == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if subscriptionID == 0 {
		return nil, fmt.Errorf("subscription ID is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	return &Payment{
		id:             id,
		subscriptionID: subscriptionID,
		amount:         amount,
		method:         method,
		notes:          notes,
		processedByID:  processedByID,
		paymentDate:    paymentDate,
		createdAt:      createdAt,
	}, nil
}

func (p *Payment) ID() uint                 { return p.id }
func (p *Payment) SubscriptionID() uint     { return p.subscriptionID }
func (p *Payment) Amount() vo.Money         { return p.amount }
func (p *Payment) Method() vo.PaymentMethod { return p.method }
func (p *Payment) Notes() *string           { return p.notes }
func (p *Payment) ProcessedByID() *uint     { return p.processedByID }
func (p *Payment) PaymentDate() time.Time   { return p.paymentDate }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }

// SetID sets the payment ID (only for persistence layer use)
func (p *Payment) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = id
	return nil
}
