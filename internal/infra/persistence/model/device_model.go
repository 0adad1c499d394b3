package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel mirrors the 'devices' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type DeviceModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Brand            string     `gorm:"type:varchar(100);not null"`
	Model            string     `gorm:"type:varchar(100);not null"`
	SerialNumber     string     `gorm:"type:varchar(100);unique"`
	Issue            string     `gorm:"type:text"`
	CustomerName     string     `gorm:"type:varchar(100);not null"`
	CustomerPhone    string     `gorm:"type:varchar(30)"`
	AssignedTo       *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:varchar(40);not null;index"`
	RepairCost       int64      `gorm:"not null;default:0"`
	DepositAmount    int64      `gorm:"not null;default:0"`
	ExpectedReturnAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	Remarks []DeviceRemarkModel `gorm:"foreignKey:DeviceID"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceRemarkModel mirrors the 'device_remarks' table: the append-only notes
// trail for each device.
type DeviceRemarkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceRemarkModel) TableName() string {
	return "device_remarks"
}
