package model

import (
	"time"

	"github.com/google/uuid"
)

// RepairPartModel mirrors the 'repair_parts' table.
type RepairPartModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(200);not null"`
	PartRef     string    `gorm:"type:varchar(100)"`
	Quantity    int       `gorm:"not null;default:1"`
	CostPerUnit int64     `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	Notes       string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RepairPartModel) TableName() string {
	return "repair_parts"
}
