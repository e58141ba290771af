package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/shared/constants"
)

// PaymentModel represents the database persistence model for payments.
// Rows are append-only; there is no update path through the repository.
type PaymentModel struct {
	ID             uint    `gorm:"primarykey"`
	SubscriptionID uint    `gorm:"not null;index:idx_subscription_payment"`
	AmountCents    int64   `gorm:"not null"`
	Currency       string  `gorm:"not null;size:3;default:MAD"`
	Method         string  `gorm:"not null;size:20"`
	Notes          *string `gorm:"size:500"`
	ProcessedByID  *uint
	PaymentDate    time.Time `gorm:"not null;index:idx_payment_date"`
	CreatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return constants.TablePayments
}
