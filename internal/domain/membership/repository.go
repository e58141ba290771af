package membership

import (
	"context"
	"time"

	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetByIDForUpdate loads the subscription with a row lock. Must be called
	// inside a transaction; used by the payment path to serialize concurrent
	// ledger updates on the same subscription.
	GetByIDForUpdate(ctx context.Context, id uint) (*Subscription, error)
	GetByClientID(ctx context.Context, clientID uint) ([]*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	Delete(ctx context.Context, id uint) error

	// FindExpired returns active subscriptions whose end date is before the
	// given business date. Suspended and cancelled records are never returned.
	FindExpired(ctx context.Context, before time.Time) ([]*Subscription, error)
	// FindCurrentByClientID returns the client's active subscriptions whose
	// date range contains the given business date.
	FindCurrentByClientID(ctx context.Context, clientID uint, date time.Time) ([]*Subscription, error)
	List(ctx context.Context, filter SubscriptionFilter) ([]*Subscription, int64, error)

	CountByPlanID(ctx context.Context, planID uint) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type SubscriptionFilter struct {
	ClientID *uint
	PlanID   *uint
	Status   *vo.SubscriptionStatus
	Page     int
	PageSize int
}

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error

	GetAllActive(ctx context.Context) ([]*Plan, error)
	List(ctx context.Context, filter PlanFilter) ([]*Plan, int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type PlanFilter struct {
	Status   *PlanStatus
	Page     int
	PageSize int
}
