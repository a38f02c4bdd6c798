package repositories

import (
	"github.com/sensorgrid-api/database"
	"github.com/sensorgrid-api/models"
	"gorm.io/gorm"
)

// ModuleRepository handles database operations for modules
type ModuleRepository struct{}

// NewModuleRepository creates a new module repository instance
func NewModuleRepository() *ModuleRepository {
	return &ModuleRepository{}
}

// FindByOwner retrieves a module only when it belongs to the given user
func (r *ModuleRepository) FindByOwner(userID, id string) (models.Module, error) {
	var module models.Module
	result := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&module)
	return module, result.Error
}

// FindAllByProject retrieves all modules contained in a project
func (r *ModuleRepository) FindAllByProject(projectID string) ([]models.Module, error) {
	var modules []models.Module
	result := database.DB.Where("project_id = ?", projectID).Find(&modules)
	return modules, result.Error
}

// DeviceIDs returns the ids of the devices a module currently contains
func (r *ModuleRepository) DeviceIDs(moduleID string) ([]string, error) {
	var ids []string
	err := database.DB.Model(&models.Device{}).Where("module_id = ?", moduleID).Pluck("id", &ids).Error
	return ids, err
}

// Create inserts a new module into the database
func (r *ModuleRepository) Create(module models.Module) (models.Module, error) {
	result := database.DB.Create(&module)
	return module, result.Error
}

// UpdateFields applies the given column values to a module
func (r *ModuleRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return database.DB.Model(&models.Module{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the module and its whole subtree in one transaction
func (r *ModuleRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return deleteModuleTrees(tx, []string{id})
	})
}

// Exists checks if a module exists regardless of owner
func (r *ModuleRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Module{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
