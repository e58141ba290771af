package valueobjects

import "fmt"

// AccessResult is the outcome of an access evaluation at the door.
type AccessResult string

const (
	AccessGranted                AccessResult = "GRANTED"
	AccessDeniedExpired          AccessResult = "DENIED_EXPIRED"
	AccessDeniedUnpaid           AccessResult = "DENIED_UNPAID"
	AccessDeniedNoSubscription   AccessResult = "DENIED_NO_SUBSCRIPTION"
	AccessDeniedSuspended        AccessResult = "DENIED_SUSPENDED"
	AccessDeniedFingerprintError AccessResult = "DENIED_FINGERPRINT_ERROR"
)

var validResults = map[AccessResult]bool{
	AccessGranted:                true,
	AccessDeniedExpired:          true,
	AccessDeniedUnpaid:           true,
	AccessDeniedNoSubscription:   true,
	AccessDeniedSuspended:        true,
	AccessDeniedFingerprintError: true,
}

func NewAccessResult(value string) (AccessResult, error) {
	result := AccessResult(value)
	if !result.IsValid() {
		return "", fmt.Errorf("invalid access result: %s", value)
	}
	return result, nil
}

func (r AccessResult) IsValid() bool {
	return validResults[r]
}

func (r AccessResult) IsGranted() bool {
	return r == AccessGranted
}

func (r AccessResult) IsDenied() bool {
	return r.IsValid() && r != AccessGranted
}

func (r AccessResult) String() string {
	return string(r)
}
