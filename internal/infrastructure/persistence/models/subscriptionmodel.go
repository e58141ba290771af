package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. Dates are business dates stored at midnight UTC; the end
// date is inclusive. Price fields are the snapshot taken from the plan at
// creation time.
type SubscriptionModel struct {
	ID              uint      `gorm:"primarykey"`
	ClientID        uint      `gorm:"not null;index:idx_client_subscription"`
	PlanID          uint      `gorm:"not null;index:idx_plan_subscription"`
	Status          string    `gorm:"not null;size:20;index:idx_subscription_status"`
	StartDate       time.Time `gorm:"not null"`
	EndDate         time.Time `gorm:"not null;index:idx_end_date"`
	TotalPriceCents int64     `gorm:"not null"`
	AmountPaidCents int64     `gorm:"not null;default:0"`
	Currency        string    `gorm:"not null;size:3;default:MAD"`
	Version         int       `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubs
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
