package membership

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound     = errors.New("subscription not found")
	ErrPlanNotFound             = errors.New("subscription plan not found")
	ErrPlanInactive             = errors.New("subscription plan inactive")
	ErrPlanNameExists           = errors.New("plan name already exists")
	ErrActiveSubscriptionExists = errors.New("client already has an active subscription")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrSubscriptionModified     = errors.New("subscription was modified concurrently")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
