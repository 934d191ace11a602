package model

import (
	"time"

	"github.com/google/uuid"
)

// PlatformModel mirrors the 'platforms' table.
type PlatformModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	LogoURL     string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Subscriptions []SubscriptionModel `gorm:"foreignKey:PlatformID"`
}

// TableName explicitly sets the table name for GORM.
func (PlatformModel) TableName() string {
	return "platforms"
}
