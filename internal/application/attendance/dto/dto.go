package dto

import (
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance"
)

type AttendanceDTO struct {
	ID             uint      `json:"id"`
	ClientID       uint      `json:"client_id"`
	SubscriptionID *uint     `json:"subscription_id,omitempty"`
	Date           time.Time `json:"date"`
	CheckInTime    time.Time `json:"check_in_time"`
	AccessResult   string    `json:"access_result"`
	DenialReason   *string   `json:"denial_reason,omitempty"`
	RequestID      string    `json:"request_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToAttendanceDTO(a *attendance.Attendance) *AttendanceDTO {
	if a == nil {
		return nil
	}

	return &AttendanceDTO{
		ID:             a.ID(),
		ClientID:       a.ClientID(),
		SubscriptionID: a.SubscriptionID(),
		Date:           a.Date(),
		CheckInTime:    a.CheckInTime(),
		AccessResult:   a.AccessResult().String(),
		DenialReason:   a.DenialReason(),
		RequestID:      a.RequestID(),
		CreatedAt:      a.CreatedAt(),
	}
}

func ToAttendanceDTOs(records []*attendance.Attendance) []*AttendanceDTO {
	dtos := make([]*AttendanceDTO, 0, len(records))
	for _, a := range records {
		if d := ToAttendanceDTO(a); d != nil {
			dtos = append(dtos, d)
		}
	}
	return dtos
}
