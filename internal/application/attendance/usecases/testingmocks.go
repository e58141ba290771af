package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)        {}
func (noopLogger) Info(msg string, args ...any)         {}
func (noopLogger) Warn(msg string, args ...any)         {}
func (noopLogger) Error(msg string, args ...any)        {}
func (l noopLogger) With(args ...any) logger.Interface  { return l }
func (l noopLogger) Named(name string) logger.Interface { return l }

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockAttendanceRepository struct {
	mock.Mock
}

func (m *mockAttendanceRepository) Create(ctx context.Context, record *attendance.Attendance) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockAttendanceRepository) GetByID(ctx context.Context, id uint) (*attendance.Attendance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Attendance), args.Error(1)
}

func (m *mockAttendanceRepository) GetByExternalEventID(ctx context.Context, externalEventID string) (*attendance.Attendance, error) {
	args := m.Called(ctx, externalEventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.Attendance), args.Error(1)
}

func (m *mockAttendanceRepository) ListByClientID(ctx context.Context, clientID uint, page, pageSize int) ([]*attendance.Attendance, int64, error) {
	args := m.Called(ctx, clientID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*attendance.Attendance), args.Get(1).(int64), args.Error(2)
}

func (m *mockAttendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]*attendance.Attendance, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*attendance.Attendance), args.Get(1).(int64), args.Error(2)
}

func (m *mockAttendanceRepository) CountGrantedOnDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAttendanceRepository) HasGrantedOnDate(ctx context.Context, clientID uint, date time.Time) (bool, error) {
	args := m.Called(ctx, clientID, date)
	return args.Bool(0), args.Error(1)
}

type mockClientRepository struct {
	mock.Mock
}

func (m *mockClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientRepository) GetByPhone(ctx context.Context, phone string) (*client.Client, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientRepository) GetByFingerprintID(ctx context.Context, fingerprintID string) (*client.Client, error) {
	args := m.Called(ctx, fingerprintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClientRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*client.Client), args.Get(1).(int64), args.Error(2)
}

func (m *mockClientRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *membership.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*membership.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) GetByIDForUpdate(ctx context.Context, id uint) (*membership.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) GetByClientID(ctx context.Context, clientID uint) ([]*membership.Subscription, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*membership.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *membership.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSubscriptionRepository) FindExpired(ctx context.Context, before time.Time) ([]*membership.Subscription, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*membership.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) FindCurrentByClientID(ctx context.Context, clientID uint, date time.Time) ([]*membership.Subscription, error) {
	args := m.Called(ctx, clientID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*membership.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepository) List(ctx context.Context, filter membership.SubscriptionFilter) ([]*membership.Subscription, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*membership.Subscription), args.Get(1).(int64), args.Error(2)
}

func (m *mockSubscriptionRepository) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
