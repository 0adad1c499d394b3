package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffUserModel mirrors the 'staff_users' table.
type StaffUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(30);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Devices []StaffDeviceModel `gorm:"foreignKey:StaffID"`
}

// TableName explicitly sets the table name for GORM.
func (StaffUserModel) TableName() string {
	return "staff_users"
}
