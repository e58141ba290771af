package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanUseService(t *testing.T) {
	assert.True(t, StatusActive.CanUseService())
	assert.False(t, StatusExpired.CanUseService())
	assert.False(t, StatusSuspended.CanUseService())
	assert.False(t, StatusCancelled.CanUseService())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    SubscriptionStatus
		to      SubscriptionStatus
		allowed bool
	}{
		{StatusActive, StatusExpired, true},
		{StatusActive, StatusSuspended, true},
		{StatusActive, StatusCancelled, true},
		{StatusSuspended, StatusActive, true},
		{StatusSuspended, StatusExpired, true},
		{StatusSuspended, StatusCancelled, true},
		{StatusExpired, StatusActive, false},
		{StatusExpired, StatusSuspended, false},
		{StatusCancelled, StatusActive, false},
		{StatusCancelled, StatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCanTransitionTo_UnknownStatus(t *testing.T) {
	assert.False(t, SubscriptionStatus("frozen").CanTransitionTo(StatusActive))
}
