package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sensorgrid-api/database"
	"github.com/sensorgrid-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	database.DB = db
}

// seedTree inserts user → project → module → device → reading directly
func seedTree(t *testing.T) (models.User, models.Project, models.Module, models.Device, models.SensorReading) {
	t.Helper()
	user, err := NewUserRepository().Create(models.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hash",
	})
	require.NoError(t, err)

	project, err := NewProjectRepository().Create(models.Project{
		Name:   "P1",
		UserID: user.ID,
	})
	require.NoError(t, err)

	module, err := NewModuleRepository().Create(models.Module{
		Name:      "M1",
		ProjectID: project.ID,
		UserID:    user.ID,
	})
	require.NoError(t, err)

	device, err := NewDeviceRepository().Create(models.Device{
		Name:       "D1",
		DeviceType: models.DeviceTypeSensor,
		DataTypes: models.DataTypeList{
			{MeasurementType: models.MeasurementTemperature, MeasurementUnit: models.UnitCelsius},
		},
		ModuleID: module.ID,
		UserID:   user.ID,
	})
	require.NoError(t, err)

	reading, err := NewSensorReadingRepository().Create(models.SensorReading{
		DataType: models.DataType{MeasurementType: models.MeasurementTemperature, MeasurementUnit: models.UnitCelsius},
		Value:    models.JSONValue{V: 21.5},
		DeviceID: device.ID,
		UserID:   user.ID,
	})
	require.NoError(t, err)

	return user, project, module, device, reading
}

func TestExistsIsOwnerAgnostic(t *testing.T) {
	setupDB(t)
	_, project, module, _, _ := seedTree(t)

	projectRepo := NewProjectRepository()
	moduleRepo := NewModuleRepository()

	exists, err := projectRepo.Exists(project.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = moduleRepo.Exists(module.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = projectRepo.Exists("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindByOwnerMissesForeignOwner(t *testing.T) {
	setupDB(t)
	_, project, _, _, _ := seedTree(t)

	other, err := NewUserRepository().Create(models.User{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hash",
	})
	require.NoError(t, err)

	_, err = NewProjectRepository().FindByOwner(other.ID, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDerivedChildIDLists(t *testing.T) {
	setupDB(t)
	_, project, module, device, _ := seedTree(t)

	moduleIDs, err := NewProjectRepository().ModuleIDs(project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{module.ID}, moduleIDs)

	deviceIDs, err := NewModuleRepository().DeviceIDs(module.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{device.ID}, deviceIDs)
}

func TestProjectDeleteRemovesSubtree(t *testing.T) {
	setupDB(t)
	_, project, module, device, _ := seedTree(t)

	require.NoError(t, NewProjectRepository().Delete(project.ID))

	exists, err := NewProjectRepository().Exists(project.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = NewModuleRepository().Exists(module.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	var devices, readings int64
	require.NoError(t, database.DB.Model(&models.Device{}).Where("id = ?", device.ID).Count(&devices).Error)
	require.NoError(t, database.DB.Model(&models.SensorReading{}).Where("device_id = ?", device.ID).Count(&readings).Error)
	assert.Zero(t, devices)
	assert.Zero(t, readings)
}

func TestUserDeleteRemovesEverythingOwned(t *testing.T) {
	setupDB(t)
	user, _, _, _, _ := seedTree(t)

	require.NoError(t, NewUserRepository().Delete(user.ID))

	for _, model := range []interface{}{
		&models.User{}, &models.Project{}, &models.Module{}, &models.Device{}, &models.SensorReading{},
	} {
		var count int64
		require.NoError(t, database.DB.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}
