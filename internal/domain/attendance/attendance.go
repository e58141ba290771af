package attendance

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
)

// Attendance is an immutable audit record of one access attempt, granted or
// denied. The subscription reference is the subscription evaluated at the
// door; denied attempts without a subscription leave it nil.
type Attendance struct {
	id              uint
	clientID        uint
	subscriptionID  *uint
	date            time.Time
	checkInTime     time.Time
	accessResult    valueobjects.AccessResult
	denialReason    *string
	deviceToken     *string
	requestID       string
	externalEventID *string
	createdAt       time.Time
}

// NewAttendance records an access attempt at checkInTime. The attendance date
// is derived from the check-in instant using the gym's business timezone.
func NewAttendance(
	clientID uint,
	subscriptionID *uint,
	checkInTime time.Time,
	result valueobjects.AccessResult,
	denialReason *string,
	deviceToken *string,
	externalEventID *string,
) (*Attendance, error) {
	if clientID == 0 {
		return nil, errors.New("client ID is required")
	}
	if !result.IsValid() {
		return nil, errors.New("access result is invalid")
	}
	if result.IsGranted() && denialReason != nil {
		return nil, errors.New("granted attendance cannot carry a denial reason")
	}
	if result.IsDenied() && denialReason == nil {
		return nil, errors.New("denied attendance requires a denial reason")
	}

	checkInUTC := checkInTime.UTC()
	return &Attendance{
		clientID:        clientID,
		subscriptionID:  subscriptionID,
		date:            biztime.DateOf(checkInUTC),
		checkInTime:     checkInUTC,
		accessResult:    result,
		denialReason:    denialReason,
		deviceToken:     deviceToken,
		requestID:       uuid.New().String(),
		externalEventID: externalEventID,
		createdAt:       biztime.NowUTC(),
	}, nil
}

// ReconstructAttendance rebuilds an attendance record from persistence.
func ReconstructAttendance(
	id uint,
	clientID uint,
	subscriptionID *uint,
	date time.Time,
	checkInTime time.Time,
	result valueobjects.AccessResult,
	denialReason *string,
	deviceToken *string,
	requestID string,
	externalEventID *string,
	createdAt time.Time,
) *Attendance {
	return &Attendance{
		id:              id,
		clientID:        clientID,
		subscriptionID:  subscriptionID,
		date:            date,
		checkInTime:     checkInTime,
		accessResult:    result,
		denialReason:    denialReason,
		deviceToken:     deviceToken,
		requestID:       requestID,
		externalEventID: externalEventID,
		createdAt:       createdAt,
	}
}

func (a *Attendance) ID() uint                                { return a.id }
func (a *Attendance) ClientID() uint                          { return a.clientID }
func (a *Attendance) SubscriptionID() *uint                   { return a.subscriptionID }
func (a *Attendance) Date() time.Time                         { return a.date }
func (a *Attendance) CheckInTime() time.Time                  { return a.checkInTime }
func (a *Attendance) AccessResult() valueobjects.AccessResult { return a.accessResult }
func (a *Attendance) DenialReason() *string                   { return a.denialReason }
func (a *Attendance) DeviceToken() *string                    { return a.deviceToken }
func (a *Attendance) RequestID() string                       { return a.requestID }
func (a *Attendance) ExternalEventID() *string                { return a.externalEventID }
func (a *Attendance) CreatedAt() time.Time                    { return a.createdAt }

func (a *Attendance) IsGranted() bool {
	return a.accessResult.IsGranted()
}

func (a *Attendance) SetID(id uint) {
	if a.id == 0 {
		a.id = id
	}
}
