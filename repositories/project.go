package repositories

import (
	"github.com/sensorgrid-api/database"
	"github.com/sensorgrid-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByOwner retrieves a project only when it belongs to the given user.
// A miss is indistinguishable from a foreign-owned project.
func (r *ProjectRepository) FindByOwner(userID, id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&project)
	return project, result.Error
}

// FindAllByOwner retrieves all projects belonging to a user
func (r *ProjectRepository) FindAllByOwner(userID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("user_id = ?", userID).Find(&projects)
	return projects, result.Error
}

// ModuleIDs returns the ids of the modules a project currently contains,
// derived from the child side so the list can never drift out of sync.
func (r *ProjectRepository) ModuleIDs(projectID string) ([]string, error) {
	var ids []string
	err := database.DB.Model(&models.Module{}).Where("project_id = ?", projectID).Pluck("id", &ids).Error
	return ids, err
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// UpdateFields applies the given column values to a project
func (r *ProjectRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return database.DB.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the project and its whole subtree in one transaction
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return deleteProjectTrees(tx, []string{id})
	})
}

// Exists checks if a project exists regardless of owner
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
