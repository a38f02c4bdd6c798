package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceType represents what a device does with its data types
type DeviceType string

const (
	DeviceTypeSensor   DeviceType = "sensor"
	DeviceTypeActuator DeviceType = "actuator"
)

// Device lives inside a module and declares the data types its readings
// must carry. Devices are immutable after creation.
type Device struct {
	ID          string       `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string       `json:"name" gorm:"size:50;not null"`
	Description string       `json:"description" gorm:"size:200;default:null"`
	DeviceType  DeviceType   `json:"deviceType" gorm:"type:varchar(10);not null"`
	DataTypes   DataTypeList `json:"dataTypes" gorm:"type:jsonb"`
	ModuleID    string       `json:"moduleId" gorm:"type:uuid;not null;index"`
	UserID      string       `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	// Relations
	Module Module `json:"module,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for Device model
func (Device) TableName() string {
	return "devices"
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
