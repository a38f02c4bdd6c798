package repositories

import (
	"github.com/sensorgrid-api/database"
	"github.com/sensorgrid-api/models"
	"gorm.io/gorm"
)

// DeviceRepository handles database operations for devices
type DeviceRepository struct{}

// NewDeviceRepository creates a new device repository instance
func NewDeviceRepository() *DeviceRepository {
	return &DeviceRepository{}
}

// FindByOwner retrieves a device only when it belongs to the given user
func (r *DeviceRepository) FindByOwner(userID, id string) (models.Device, error) {
	var device models.Device
	result := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&device)
	return device, result.Error
}

// FindInModule retrieves a device only when it is contained in the given
// module and owned by the given user. The module_id predicate is the
// containment re-check; a user owning sibling modules must not be able to
// address a device through the wrong one.
func (r *DeviceRepository) FindInModule(userID, moduleID, id string) (models.Device, error) {
	var device models.Device
	result := database.DB.Where("id = ? AND module_id = ? AND user_id = ?", id, moduleID, userID).First(&device)
	return device, result.Error
}

// FindAllByModule retrieves all devices contained in a module
func (r *DeviceRepository) FindAllByModule(moduleID string) ([]models.Device, error) {
	var devices []models.Device
	result := database.DB.Where("module_id = ?", moduleID).Find(&devices)
	return devices, result.Error
}

// Create inserts a new device into the database
func (r *DeviceRepository) Create(device models.Device) (models.Device, error) {
	result := database.DB.Create(&device)
	return device, result.Error
}

// Delete removes the device and its readings in one transaction
func (r *DeviceRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return deleteDeviceTrees(tx, []string{id})
	})
}
