package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
)

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	uc := NewRecordPaymentUseCase(new(mockPaymentRepository), new(mockSubscriptionRepository), nil, noopLogger{})

	result, err := uc.Execute(context.Background(), RecordPaymentCommand{
		SubscriptionID: 1,
		AmountCents:    0,
		Method:         "cash",
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestRecordPayment_RejectsUnknownMethod(t *testing.T) {
	uc := NewRecordPaymentUseCase(new(mockPaymentRepository), new(mockSubscriptionRepository), nil, noopLogger{})

	result, err := uc.Execute(context.Background(), RecordPaymentCommand{
		SubscriptionID: 1,
		AmountCents:    10000,
		Method:         "crypto",
	})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListSubscriptionPayments_ReturnsBalanceFigures(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	subRepo := new(mockSubscriptionRepository)

	start := biztime.Date(2024, time.March, 1)
	sub, err := membership.ReconstructSubscription(1, 1, 100, vo.StatusActive, start, biztime.Date(2024, time.March, 31), 30000, 10000, "MAD", 2, start, start)
	require.NoError(t, err)

	subRepo.On("GetByID", mock.Anything, uint(1)).Return(sub, nil)
	paymentRepo.On("GetBySubscriptionID", mock.Anything, uint(1)).Return(nil, nil)

	uc := NewListSubscriptionPaymentsUseCase(paymentRepo, subRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(10000), result.TotalPaidCents)
	assert.Equal(t, int64(20000), result.RemainingCents)
	assert.Equal(t, int64(30000), result.TotalPriceCents)
}

func TestListSubscriptionPayments_SubscriptionNotFound(t *testing.T) {
	paymentRepo := new(mockPaymentRepository)
	subRepo := new(mockSubscriptionRepository)
	subRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, nil)

	uc := NewListSubscriptionPaymentsUseCase(paymentRepo, subRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), 404)

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
