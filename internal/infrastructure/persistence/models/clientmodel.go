package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/shared/constants"
)

// ClientModel represents the database persistence model for gym clients.
// This is the anti-corruption layer between domain and database.
type ClientModel struct {
	ID            uint    `gorm:"primarykey"`
	FullName      string  `gorm:"not null;size:150"`
	Phone         string  `gorm:"uniqueIndex;not null;size:30"`
	Email         string  `gorm:"size:150"`
	Gender        *string `gorm:"size:10"`
	BirthDate     *time.Time
	FingerprintID *string `gorm:"uniqueIndex;size:100;comment:opaque token issued by the fingerprint device"`
	Version       int     `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ClientModel) TableName() string {
	return constants.TableClients
}

// BeforeCreate hook for GORM
func (c *ClientModel) BeforeCreate(tx *gorm.DB) error {
	if c.Version == 0 {
		c.Version = 1
	}
	return nil
}
