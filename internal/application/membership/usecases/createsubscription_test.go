package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
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

func testPlan(t *testing.T, id uint, priceCents int64, months int) *membership.Plan {
	t.Helper()
	plan, err := membership.NewPlan("Monthly", "", priceCents, "MAD", months)
	require.NoError(t, err)
	require.NoError(t, plan.SetID(id))
	return plan
}

func testSubscription(t *testing.T, id uint, status vo.SubscriptionStatus, start, end time.Time) *membership.Subscription {
	t.Helper()
	sub, err := membership.ReconstructSubscription(id, 1, 100, status, start, end, 30000, 0, "MAD", 1, start, start)
	require.NoError(t, err)
	return sub
}

func TestCreateSubscription_Success(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)
	clientRepo := new(mockClientRepository)

	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	planRepo.On("GetByID", mock.Anything, uint(100)).Return(testPlan(t, 100, 30000, 1), nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).Return([]*membership.Subscription{}, nil)
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*membership.Subscription")).Return(nil)

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, clientRepo, noopLogger{})
	start := biztime.Date(2024, time.March, 1)

	sub, err := uc.Execute(context.Background(), CreateSubscriptionCommand{
		ClientID:  1,
		PlanID:    100,
		StartDate: start,
	})

	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, start, sub.StartDate())
	assert.Equal(t, biztime.Date(2024, time.March, 31), sub.EndDate())
	assert.Equal(t, int64(30000), sub.TotalPriceCents())
	subRepo.AssertExpectations(t)
}

func TestCreateSubscription_ClientNotFound(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)
	clientRepo := new(mockClientRepository)

	clientRepo.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, clientRepo, noopLogger{})

	sub, err := uc.Execute(context.Background(), CreateSubscriptionCommand{ClientID: 9, PlanID: 100})

	assert.Nil(t, sub)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateSubscription_InactivePlan(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)
	clientRepo := new(mockClientRepository)

	plan := testPlan(t, 100, 30000, 1)
	plan.Deactivate()

	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	planRepo.On("GetByID", mock.Anything, uint(100)).Return(plan, nil)

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, clientRepo, noopLogger{})

	sub, err := uc.Execute(context.Background(), CreateSubscriptionCommand{ClientID: 1, PlanID: 100})

	assert.Nil(t, sub)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreateSubscription_RejectsSecondActive(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)
	clientRepo := new(mockClientRepository)

	today := biztime.Today()
	existing := testSubscription(t, 5, vo.StatusActive, today.AddDate(0, 0, -10), today.AddDate(0, 0, 20))

	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	planRepo.On("GetByID", mock.Anything, uint(100)).Return(testPlan(t, 100, 30000, 1), nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).Return([]*membership.Subscription{existing}, nil)

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, clientRepo, noopLogger{})

	sub, err := uc.Execute(context.Background(), CreateSubscriptionCommand{ClientID: 1, PlanID: 100})

	assert.Nil(t, sub)
	assert.True(t, apperrors.IsConflictError(err))
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSubscription_LapsedActiveDoesNotBlock(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)
	clientRepo := new(mockClientRepository)

	// Still marked active but past its end date: the expiry sweep has not
	// caught up with it yet, and it must not block a fresh signup.
	today := biztime.Today()
	lapsed := testSubscription(t, 5, vo.StatusActive, today.AddDate(0, -2, 0), today.AddDate(0, -1, 0))

	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	planRepo.On("GetByID", mock.Anything, uint(100)).Return(testPlan(t, 100, 30000, 1), nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).Return([]*membership.Subscription{lapsed}, nil)
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*membership.Subscription")).Return(nil)

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, clientRepo, noopLogger{})

	sub, err := uc.Execute(context.Background(), CreateSubscriptionCommand{ClientID: 1, PlanID: 100})

	require.NoError(t, err)
	require.NotNil(t, sub)
	subRepo.AssertExpectations(t)
}

func TestCreateSubscription_ExpiredHistoryDoesNotBlock(t *testing.T) {
	subRepo := new(mockSubscriptionRepository)
	planRepo := new(mockPlanRepository)
	clientRepo := new(mockClientRepository)

	old := testSubscription(t, 5, vo.StatusExpired, biztime.Date(2023, time.January, 1), biztime.Date(2023, time.January, 31))

	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	planRepo.On("GetByID", mock.Anything, uint(100)).Return(testPlan(t, 100, 30000, 1), nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).Return([]*membership.Subscription{old}, nil)
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*membership.Subscription")).Return(nil)

	uc := NewCreateSubscriptionUseCase(subRepo, planRepo, clientRepo, noopLogger{})

	sub, err := uc.Execute(context.Background(), CreateSubscriptionCommand{ClientID: 1, PlanID: 100})

	require.NoError(t, err)
	require.NotNil(t, sub)
}
