package services

import (
	"github.com/sensorgrid-api/apperrors"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/models"
	"github.com/sensorgrid-api/repositories"
)

// DeviceService handles business logic for devices
type DeviceService struct {
	deviceRepo *repositories.DeviceRepository
	moduleRepo *repositories.ModuleRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService() *DeviceService {
	return &DeviceService{
		deviceRepo: repositories.NewDeviceRepository(),
		moduleRepo: repositories.NewModuleRepository(),
	}
}

// CreateDevice creates a device under a module the user owns. Every declared
// data type must pair a unit with its measurement type before anything is
// persisted.
func (s *DeviceService) CreateDevice(userID, moduleID string, req dto.CreateDeviceRequest) (dto.DeviceResponse, error) {
	for _, dataType := range req.DataTypes {
		if err := dataType.Validate(); err != nil {
			return dto.DeviceResponse{}, apperrors.NewValidation(err.Error())
		}
	}

	module, err := s.moduleRepo.FindByOwner(userID, moduleID)
	if err != nil {
		return dto.DeviceResponse{}, orNotFound(err, apperrors.ErrModuleNotFound)
	}

	device := models.Device{
		Name:        req.Name,
		Description: req.Description,
		DeviceType:  req.DeviceType,
		DataTypes:   req.DataTypes,
		ModuleID:    module.ID,
		UserID:      module.UserID,
	}

	device, err = s.deviceRepo.Create(device)
	if err != nil {
		return dto.DeviceResponse{}, err
	}

	return deviceResponse(device), nil
}

// GetDevice retrieves a device contained in the given module. Addressing an
// owned device through a sibling module is a miss.
func (s *DeviceService) GetDevice(userID, moduleID, deviceID string) (dto.DeviceResponse, error) {
	if _, err := s.moduleRepo.FindByOwner(userID, moduleID); err != nil {
		return dto.DeviceResponse{}, orNotFound(err, apperrors.ErrModuleNotFound)
	}

	device, err := s.deviceRepo.FindInModule(userID, moduleID, deviceID)
	if err != nil {
		return dto.DeviceResponse{}, orNotFound(err, apperrors.ErrDeviceNotFound)
	}
	return deviceResponse(device), nil
}

// ListDevices retrieves the devices of a module the user owns
func (s *DeviceService) ListDevices(userID, moduleID string) ([]dto.DeviceResponse, error) {
	if _, err := s.moduleRepo.FindByOwner(userID, moduleID); err != nil {
		return nil, orNotFound(err, apperrors.ErrModuleNotFound)
	}

	devices, err := s.deviceRepo.FindAllByModule(moduleID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DeviceResponse, 0, len(devices))
	for _, device := range devices {
		responses = append(responses, deviceResponse(device))
	}
	return responses, nil
}

// DeleteDevice removes the device and its readings
func (s *DeviceService) DeleteDevice(userID, moduleID, deviceID string) error {
	if _, err := s.moduleRepo.FindByOwner(userID, moduleID); err != nil {
		return orNotFound(err, apperrors.ErrModuleNotFound)
	}

	if _, err := s.deviceRepo.FindInModule(userID, moduleID, deviceID); err != nil {
		return orNotFound(err, apperrors.ErrDeviceNotFound)
	}
	return s.deviceRepo.Delete(deviceID)
}

func deviceResponse(device models.Device) dto.DeviceResponse {
	return dto.DeviceResponse{
		ID:          device.ID,
		UserID:      device.UserID,
		ModuleID:    device.ModuleID,
		Name:        device.Name,
		Description: device.Description,
		DeviceType:  device.DeviceType,
		DataTypes:   device.DataTypes,
		CreatedAt:   device.CreatedAt,
		UpdatedAt:   device.UpdatedAt,
	}
}
