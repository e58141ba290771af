package payment

import "context"

// Repository persists the append-only ledger. There is deliberately no Update
// or Delete: payments are never revised once written.
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*Payment, error)
	SumBySubscriptionID(ctx context.Context, subscriptionID uint) (int64, error)
}
