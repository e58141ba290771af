package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	membershipvo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
)

func currentPaidSubscription(t *testing.T) *membership.Subscription {
	t.Helper()
	today := biztime.Today()
	sub, err := membership.ReconstructSubscription(
		10, 1, 100, membershipvo.StatusActive,
		today.AddDate(0, 0, -5), today.AddDate(0, 0, 25),
		30000, 30000, "MAD", 2, today, today,
	)
	require.NoError(t, err)
	return sub
}

func newCheckInUseCase(attRepo *mockAttendanceRepository, clientRepo *mockClientRepository, subRepo *mockSubscriptionRepository) *CheckInUseCase {
	evaluate := NewEvaluateAccessUseCase(clientRepo, subRepo, noopLogger{})
	return NewCheckInUseCase(attRepo, evaluate, noopLogger{})
}

func TestCheckIn_GrantedRecordsAttendance(t *testing.T) {
	attRepo := new(mockAttendanceRepository)
	clientRepo := new(mockClientRepository)
	subRepo := new(mockSubscriptionRepository)

	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).
		Return([]*membership.Subscription{currentPaidSubscription(t)}, nil)
	attRepo.On("HasGrantedOnDate", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).Return(false, nil)
	attRepo.On("Create", mock.Anything, mock.AnythingOfType("*attendance.Attendance")).Return(nil)

	uc := newCheckInUseCase(attRepo, clientRepo, subRepo)

	result, err := uc.Execute(context.Background(), CheckInCommand{ClientID: 1})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Replayed)
	assert.True(t, result.FirstVisitOfDay)
	assert.True(t, result.Attendance.IsGranted())
	assert.Nil(t, result.Attendance.DenialReason())
	require.NotNil(t, result.Attendance.SubscriptionID())
	assert.Equal(t, uint(10), *result.Attendance.SubscriptionID())
	attRepo.AssertExpectations(t)
}

func TestCheckIn_DeniedAttemptsAreRecordedToo(t *testing.T) {
	attRepo := new(mockAttendanceRepository)
	clientRepo := new(mockClientRepository)
	subRepo := new(mockSubscriptionRepository)

	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).Return(nil, nil)
	attRepo.On("Create", mock.Anything, mock.AnythingOfType("*attendance.Attendance")).Return(nil)

	uc := newCheckInUseCase(attRepo, clientRepo, subRepo)

	result, err := uc.Execute(context.Background(), CheckInCommand{ClientID: 1})

	require.NoError(t, err)
	assert.Equal(t, valueobjects.AccessDeniedNoSubscription, result.Attendance.AccessResult())
	require.NotNil(t, result.Attendance.DenialReason())
	assert.Equal(t, "No active subscription found", *result.Attendance.DenialReason())
}

func TestCheckIn_RepeatedSameDayAppends(t *testing.T) {
	attRepo := new(mockAttendanceRepository)
	clientRepo := new(mockClientRepository)
	subRepo := new(mockSubscriptionRepository)

	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, 1), nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).
		Return([]*membership.Subscription{currentPaidSubscription(t)}, nil)
	attRepo.On("HasGrantedOnDate", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	attRepo.On("HasGrantedOnDate", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).Return(true, nil).Once()
	attRepo.On("Create", mock.Anything, mock.AnythingOfType("*attendance.Attendance")).Return(nil)

	uc := newCheckInUseCase(attRepo, clientRepo, subRepo)

	first, err := uc.Execute(context.Background(), CheckInCommand{ClientID: 1})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), CheckInCommand{ClientID: 1})
	require.NoError(t, err)

	assert.True(t, first.FirstVisitOfDay)
	assert.False(t, second.FirstVisitOfDay)
	assert.NotEqual(t, first.Attendance.RequestID(), second.Attendance.RequestID())
	attRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCheckIn_ExternalEventIDDeduplicates(t *testing.T) {
	attRepo := new(mockAttendanceRepository)
	clientRepo := new(mockClientRepository)
	subRepo := new(mockSubscriptionRepository)

	eventID := "evt-123"
	existing, err := attendance.NewAttendance(1, nil, biztime.NowUTC(), valueobjects.AccessGranted, nil, nil, &eventID)
	require.NoError(t, err)

	attRepo.On("GetByExternalEventID", mock.Anything, eventID).Return(existing, nil)

	uc := newCheckInUseCase(attRepo, clientRepo, subRepo)

	result, err := uc.Execute(context.Background(), CheckInCommand{ClientID: 1, ExternalEventID: &eventID})

	require.NoError(t, err)
	assert.True(t, result.Replayed)
	assert.Equal(t, existing, result.Attendance)
	attRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckIn_ResolvesClientByFingerprint(t *testing.T) {
	attRepo := new(mockAttendanceRepository)
	clientRepo := new(mockClientRepository)
	subRepo := new(mockSubscriptionRepository)

	c := testClient(t, 1)
	clientRepo.On("GetByFingerprintID", mock.Anything, "FP-7f3a").Return(c, nil)
	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(c, nil)
	subRepo.On("GetByClientID", mock.Anything, uint(1)).
		Return([]*membership.Subscription{currentPaidSubscription(t)}, nil)
	attRepo.On("HasGrantedOnDate", mock.Anything, uint(1), mock.AnythingOfType("time.Time")).Return(false, nil)
	attRepo.On("Create", mock.Anything, mock.AnythingOfType("*attendance.Attendance")).Return(nil)

	uc := newCheckInUseCase(attRepo, clientRepo, subRepo)

	result, err := uc.Execute(context.Background(), CheckInCommand{FingerprintToken: "FP-7f3a"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), result.Attendance.ClientID())
}

func TestCheckIn_UnknownFingerprint(t *testing.T) {
	attRepo := new(mockAttendanceRepository)
	clientRepo := new(mockClientRepository)
	subRepo := new(mockSubscriptionRepository)

	clientRepo.On("GetByFingerprintID", mock.Anything, "FP-unknown").Return(nil, nil)

	uc := newCheckInUseCase(attRepo, clientRepo, subRepo)

	result, err := uc.Execute(context.Background(), CheckInCommand{FingerprintToken: "FP-unknown"})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCheckIn_RequiresIdentifier(t *testing.T) {
	uc := newCheckInUseCase(new(mockAttendanceRepository), new(mockClientRepository), new(mockSubscriptionRepository))

	result, err := uc.Execute(context.Background(), CheckInCommand{})

	assert.Nil(t, result)
	assert.Error(t, err)
}
