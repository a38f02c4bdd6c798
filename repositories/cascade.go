package repositories

import (
	"github.com/sensorgrid-api/models"
	"gorm.io/gorm"
)

// Cascade deletion helpers. Every deletion path runs bottom-up: readings
// before devices, devices before modules, modules before projects. The order
// matters even inside a transaction; a partially applied cascade can only
// ever orphan leaf readings, never leave a child pointing at a deleted parent.

// deleteDeviceTrees removes all readings belonging to the given devices, then
// the devices themselves.
func deleteDeviceTrees(tx *gorm.DB, deviceIDs []string) error {
	if len(deviceIDs) == 0 {
		return nil
	}
	if err := tx.Where("device_id IN ?", deviceIDs).Delete(&models.SensorReading{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", deviceIDs).Delete(&models.Device{}).Error
}

// deleteModuleTrees removes everything below the given modules, then the
// modules themselves.
func deleteModuleTrees(tx *gorm.DB, moduleIDs []string) error {
	if len(moduleIDs) == 0 {
		return nil
	}

	var deviceIDs []string
	if err := tx.Model(&models.Device{}).Where("module_id IN ?", moduleIDs).Pluck("id", &deviceIDs).Error; err != nil {
		return err
	}
	if err := deleteDeviceTrees(tx, deviceIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", moduleIDs).Delete(&models.Module{}).Error
}

// deleteProjectTrees removes everything below the given projects, then the
// projects themselves.
func deleteProjectTrees(tx *gorm.DB, projectIDs []string) error {
	if len(projectIDs) == 0 {
		return nil
	}

	var moduleIDs []string
	if err := tx.Model(&models.Module{}).Where("project_id IN ?", projectIDs).Pluck("id", &moduleIDs).Error; err != nil {
		return err
	}
	if err := deleteModuleTrees(tx, moduleIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", projectIDs).Delete(&models.Project{}).Error
}

// deleteUserTree removes every entity tagged with the user's id, leaf-first,
// then the user record. The redundant user_id tag on every descendant makes
// this a flat bulk delete instead of a tree walk.
func deleteUserTree(tx *gorm.DB, userID string) error {
	if err := tx.Where("user_id = ?", userID).Delete(&models.SensorReading{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.Device{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.Module{}).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&models.Project{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.User{}, "id = ?", userID).Error
}
