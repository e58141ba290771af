package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/shared/constants"
)

// AttendanceModel represents the database persistence model for access
// attempts. Date holds the business calendar day of the check-in so day
// queries can hit an index instead of computing timezone boundaries.
type AttendanceModel struct {
	ID              uint      `gorm:"primarykey"`
	ClientID        uint      `gorm:"not null;index:idx_client_attendance"`
	SubscriptionID  *uint     `gorm:"index:idx_subscription_attendance"`
	Date            time.Time `gorm:"not null;index:idx_attendance_date"`
	CheckInTime     time.Time `gorm:"not null"`
	AccessResult    string    `gorm:"not null;size:30;index:idx_access_result"`
	DenialReason    *string   `gorm:"size:300"`
	DeviceToken     *string   `gorm:"size:100"`
	RequestID       string    `gorm:"uniqueIndex;not null;size:36"`
	ExternalEventID *string   `gorm:"uniqueIndex;size:100;comment:device event ID for replay deduplication"`
	CreatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AttendanceModel) TableName() string {
	return constants.TableAttendances
}
