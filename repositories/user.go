package repositories

import (
	"github.com/sensorgrid-api/database"
	"github.com/sensorgrid-api/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for user accounts
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByLogin retrieves a user by username or email
func (r *UserRepository) FindByLogin(login string) (models.User, error) {
	var user models.User
	result := database.DB.Where("username = ? OR email = ?", login, login).First(&user)
	return user, result.Error
}

// ExistsByUsernameOrEmail checks whether either identifier is already taken
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// Delete removes the user and every entity it owns in one transaction
func (r *UserRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return deleteUserTree(tx, id)
	})
}
