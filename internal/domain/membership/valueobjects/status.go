package valueobjects

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusExpired   SubscriptionStatus = "expired"
	StatusSuspended SubscriptionStatus = "suspended"
	StatusCancelled SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanUseService reports whether a subscription in this status admits the
// client, dates and payment permitting.
func (s SubscriptionStatus) CanUseService() bool {
	return s == StatusActive
}

// CanTransitionTo validates administrative status changes against the
// permitted transition table. Expired and cancelled are terminal; a lapsed
// membership is resumed by renewal, not by flipping the status back.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusActive:    {StatusExpired, StatusSuspended, StatusCancelled},
		StatusSuspended: {StatusActive, StatusExpired, StatusCancelled},
		StatusExpired:   {},
		StatusCancelled: {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusExpired:   true,
	StatusSuspended: true,
	StatusCancelled: true,
}
