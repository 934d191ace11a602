package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table. Each row links a
// customer to a platform with billing details.
type SubscriptionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	PlatformID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(20);not null"`
	StartDate  time.Time `gorm:"not null"`
	ExpiryDate time.Time `gorm:"not null;index"`
	Cost       float64   `gorm:"type:decimal(10,2);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'active'"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer *CustomerModel `gorm:"foreignKey:CustomerID"`
	Platform *PlatformModel `gorm:"foreignKey:PlatformID"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
