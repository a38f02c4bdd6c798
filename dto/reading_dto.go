package dto

import (
	"time"

	"github.com/sensorgrid-api/models"
)

// CreateReadingRequest is the payload for recording a sensor reading. The
// data type must be one the target device declares.
type CreateReadingRequest struct {
	DataType models.DataType  `json:"dataType" binding:"required"`
	Value    models.JSONValue `json:"value"`
}

// ReadingFilter narrows a reading listing to a single day or a closed date
// range. Zero values mean no filtering.
type ReadingFilter struct {
	Date      time.Time
	StartDate time.Time
	EndDate   time.Time
}

// SensorReadingResponse is the structure for reading responses
type SensorReadingResponse struct {
	ID        string           `json:"id"`
	DeviceID  string           `json:"deviceId"`
	DataType  models.DataType  `json:"dataType"`
	Value     models.JSONValue `json:"value"`
	CreatedAt time.Time        `json:"createdAt"`
}
