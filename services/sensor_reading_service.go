package services

import (
	"github.com/sensorgrid-api/apperrors"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/models"
	"github.com/sensorgrid-api/repositories"
)

// SensorReadingService handles business logic for sensor readings
type SensorReadingService struct {
	readingRepo *repositories.SensorReadingRepository
	deviceRepo  *repositories.DeviceRepository
}

// NewSensorReadingService creates a new sensor reading service instance
func NewSensorReadingService() *SensorReadingService {
	return &SensorReadingService{
		readingRepo: repositories.NewSensorReadingRepository(),
		deviceRepo:  repositories.NewDeviceRepository(),
	}
}

// CreateReading records a measurement for a device the user owns. The
// reading's data type must be one the device declared at creation time; a
// mismatch is a validation failure, not a missing device.
func (s *SensorReadingService) CreateReading(userID, deviceID string, req dto.CreateReadingRequest) (dto.SensorReadingResponse, error) {
	device, err := s.deviceRepo.FindByOwner(userID, deviceID)
	if err != nil {
		return dto.SensorReadingResponse{}, orNotFound(err, apperrors.ErrDeviceNotFound)
	}

	if !device.DataTypes.Contains(req.DataType) {
		return dto.SensorReadingResponse{}, apperrors.NewValidation("data type is not declared on the device")
	}

	reading := models.SensorReading{
		DataType: req.DataType,
		Value:    req.Value,
		DeviceID: device.ID,
		UserID:   device.UserID,
	}

	reading, err = s.readingRepo.Create(reading)
	if err != nil {
		return dto.SensorReadingResponse{}, err
	}

	return readingResponse(reading), nil
}

// ListReadings retrieves readings for a device the user owns, optionally
// narrowed by the date filter.
func (s *SensorReadingService) ListReadings(userID, deviceID string, filter dto.ReadingFilter) ([]dto.SensorReadingResponse, error) {
	if _, err := s.deviceRepo.FindByOwner(userID, deviceID); err != nil {
		return nil, orNotFound(err, apperrors.ErrDeviceNotFound)
	}

	readings, err := s.readingRepo.FindAllByDevice(deviceID, filter.Date, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SensorReadingResponse, 0, len(readings))
	for _, reading := range readings {
		responses = append(responses, readingResponse(reading))
	}
	return responses, nil
}

func readingResponse(reading models.SensorReading) dto.SensorReadingResponse {
	return dto.SensorReadingResponse{
		ID:        reading.ID,
		DeviceID:  reading.DeviceID,
		DataType:  reading.DataType,
		Value:     reading.Value,
		CreatedAt: reading.CreatedAt,
	}
}
