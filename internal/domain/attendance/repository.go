package attendance

import (
	"context"
	"time"
)

// Filter narrows attendance listings. Date bounds are inclusive and expressed
// as business-day dates.
type Filter struct {
	ClientID *uint
	DateFrom *time.Time
	DateTo   *time.Time
	Granted  *bool
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, record *Attendance) error
	GetByID(ctx context.Context, id uint) (*Attendance, error)
	GetByExternalEventID(ctx context.Context, externalEventID string) (*Attendance, error)
	ListByClientID(ctx context.Context, clientID uint, page, pageSize int) ([]*Attendance, int64, error)
	List(ctx context.Context, filter Filter) ([]*Attendance, int64, error)
	CountGrantedOnDate(ctx context.Context, date time.Time) (int64, error)
	HasGrantedOnDate(ctx context.Context, clientID uint, date time.Time) (bool, error)
}
