package repositories

import (
	"time"

	"github.com/sensorgrid-api/database"
	"github.com/sensorgrid-api/models"
)

// SensorReadingRepository handles database operations for sensor readings.
// Readings have no update or single delete; they only ever disappear through
// the cascade of their device or one of its ancestors.
type SensorReadingRepository struct{}

// NewSensorReadingRepository creates a new sensor reading repository instance
func NewSensorReadingRepository() *SensorReadingRepository {
	return &SensorReadingRepository{}
}

// Create inserts a new reading into the database
func (r *SensorReadingRepository) Create(reading models.SensorReading) (models.SensorReading, error) {
	result := database.DB.Create(&reading)
	return reading, result.Error
}

// FindAllByDevice retrieves readings for a device, optionally narrowed to a
// single day or a closed date range.
func (r *SensorReadingRepository) FindAllByDevice(deviceID string, day, start, end time.Time) ([]models.SensorReading, error) {
	db := database.DB.Where("device_id = ?", deviceID)

	if !day.IsZero() {
		db = db.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
	} else if !start.IsZero() && !end.IsZero() {
		// end is inclusive: the whole of the end day counts
		db = db.Where("created_at >= ? AND created_at < ?", start, end.AddDate(0, 0, 1))
	}

	var readings []models.SensorReading
	result := db.Find(&readings)
	return readings, result.Error
}
