package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTodaySummary_CountsGrantedEntries(t *testing.T) {
	attRepo := new(mockAttendanceRepository)
	attRepo.On("CountGrantedOnDate", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(17), nil)

	uc := NewTodaySummaryUseCase(attRepo, noopLogger{})

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(17), result.GrantedCount)
	assert.False(t, result.Date.IsZero())
}

func TestTodaySummary_ZeroOnQuietDay(t *testing.T) {
	attRepo := new(mockAttendanceRepository)
	attRepo.On("CountGrantedOnDate", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), nil)

	uc := NewTodaySummaryUseCase(attRepo, noopLogger{})

	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.GrantedCount)
}
