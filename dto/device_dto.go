package dto

import (
	"time"

	"github.com/sensorgrid-api/models"
)

// CreateDeviceRequest is the payload for creating a device under a module.
// Devices are immutable after creation, so there is no patch request.
type CreateDeviceRequest struct {
	Name        string              `json:"name" binding:"required,max=50"`
	Description string              `json:"description" binding:"omitempty,max=200"`
	DeviceType  models.DeviceType   `json:"deviceType" binding:"required,oneof=sensor actuator"`
	DataTypes   models.DataTypeList `json:"dataTypes" binding:"required,min=1"`
}

// DeviceResponse is the structure for device responses
type DeviceResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	ModuleID    string              `json:"moduleId"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	DeviceType  models.DeviceType   `json:"deviceType"`
	DataTypes   models.DataTypeList `json:"dataTypes"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}
