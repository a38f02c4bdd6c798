package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONValue stores an arbitrary JSON value in a single column
type JSONValue struct {
	V interface{}
}

func (j JSONValue) Value() (driver.Value, error) {
	return json.Marshal(j.V)
}

func (j *JSONValue) Scan(value interface{}) error {
	if value == nil {
		j.V = nil
		return nil
	}
	return scanJSON(value, &j.V)
}

func (j JSONValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.V)
}

func (j *JSONValue) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &j.V)
}

// SensorReading is a single measurement emitted by a device. Readings are
// immutable and are only removed when their device (or an ancestor) goes.
type SensorReading struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	DataType  DataType  `json:"dataType" gorm:"type:jsonb;not null"`
	Value     JSONValue `json:"value" gorm:"type:jsonb"`
	DeviceID  string    `json:"deviceId" gorm:"type:uuid;not null;index"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Device Device `json:"device,omitempty" gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
}

// TableName sets the table name for SensorReading model
func (SensorReading) TableName() string {
	return "sensor_readings"
}

func (r *SensorReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
