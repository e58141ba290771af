package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/shared/constants"
)

// PlanModel represents the database persistence model for subscription plans.
type PlanModel struct {
	ID             uint   `gorm:"primarykey"`
	Name           string `gorm:"uniqueIndex;not null;size:100"`
	Description    string `gorm:"size:500"`
	PriceCents     int64  `gorm:"not null;comment:price in minor units"`
	Currency       string `gorm:"not null;size:3;default:MAD"`
	DurationMonths int    `gorm:"not null"`
	Status         string `gorm:"not null;size:20;default:active;index:idx_plan_status"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}

// BeforeCreate hook for GORM
func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
