package v1

import (
	"net/http"
	"testing"

	"github.com/sensorgrid-api/database"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.DB.Model(model).Count(&count).Error)
	return count
}

func TestProjectCascadeDelete(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@example.com")
	projectID := createProject(t, router, token, "P1")
	moduleID := createModule(t, router, token, projectID, "M1")
	deviceID := createDevice(t, router, token, moduleID, "D1", "")

	w := doRequest(router, "POST", "/api/v1/devices/"+deviceID+"/readings", `{
		"dataType": {"measurementType": "temperature", "measurementUnit": "celsius"},
		"value": 21.5
	}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "DELETE", "/api/v1/projects/"+projectID, "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Nothing below the project survives
	assert.EqualValues(t, 0, countRows(t, &models.Project{}))
	assert.EqualValues(t, 0, countRows(t, &models.Module{}))
	assert.EqualValues(t, 0, countRows(t, &models.Device{}))
	assert.EqualValues(t, 0, countRows(t, &models.SensorReading{}))

	w = doRequest(router, "GET", "/api/v1/modules/"+moduleID, "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModuleCascadeDelete(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@example.com")
	projectID := createProject(t, router, token, "P1")
	moduleID := createModule(t, router, token, projectID, "M1")
	deviceID := createDevice(t, router, token, moduleID, "D1", "")

	w := doRequest(router, "POST", "/api/v1/devices/"+deviceID+"/readings", `{
		"dataType": {"measurementType": "temperature", "measurementUnit": "celsius"},
		"value": 21.5
	}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "DELETE", "/api/v1/modules/"+moduleID, "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The project survives but its subtree is gone
	assert.EqualValues(t, 1, countRows(t, &models.Project{}))
	assert.EqualValues(t, 0, countRows(t, &models.Module{}))
	assert.EqualValues(t, 0, countRows(t, &models.Device{}))
	assert.EqualValues(t, 0, countRows(t, &models.SensorReading{}))
}

func TestDeviceCascadeDelete(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@example.com")
	projectID := createProject(t, router, token, "P1")
	moduleID := createModule(t, router, token, projectID, "M1")
	deviceID := createDevice(t, router, token, moduleID, "D1", "")

	w := doRequest(router, "POST", "/api/v1/devices/"+deviceID+"/readings", `{
		"dataType": {"measurementType": "temperature", "measurementUnit": "celsius"},
		"value": 21.5
	}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "DELETE", "/api/v1/modules/"+moduleID+"/devices/"+deviceID, "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.EqualValues(t, 1, countRows(t, &models.Module{}))
	assert.EqualValues(t, 0, countRows(t, &models.Device{}))
	assert.EqualValues(t, 0, countRows(t, &models.SensorReading{}))
}

func TestUserCascadeDelete(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@example.com")
	projectID := createProject(t, router, token, "P1")
	moduleID := createModule(t, router, token, projectID, "M1")
	deviceID := createDevice(t, router, token, moduleID, "D1", "")

	w := doRequest(router, "POST", "/api/v1/devices/"+deviceID+"/readings", `{
		"dataType": {"measurementType": "temperature", "measurementUnit": "celsius"},
		"value": 21.5
	}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "DELETE", "/api/v1/users", "", token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.EqualValues(t, 0, countRows(t, &models.User{}))
	assert.EqualValues(t, 0, countRows(t, &models.Project{}))
	assert.EqualValues(t, 0, countRows(t, &models.Module{}))
	assert.EqualValues(t, 0, countRows(t, &models.Device{}))
	assert.EqualValues(t, 0, countRows(t, &models.SensorReading{}))

	// The account is gone, so the credentials no longer work
	w = doRequest(router, "POST", "/api/v1/auth/login",
		`{"login": "alice", "password": "securepassword"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEndToEndFlow(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@example.com")

	projectID := createProject(t, router, token, "P1")
	moduleID := createModule(t, router, token, projectID, "M1")
	deviceID := createDevice(t, router, token, moduleID, "D1", "")

	w := doRequest(router, "POST", "/api/v1/devices/"+deviceID+"/readings", `{
		"dataType": {"measurementType": "temperature", "measurementUnit": "celsius"},
		"value": 21.5
	}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "GET", "/api/v1/devices/"+deviceID+"/readings", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var readings []dto.SensorReadingResponse
	decodeData(t, w, &readings)
	require.Len(t, readings, 1)
	assert.Equal(t, 21.5, readings[0].Value.V)

	w = doRequest(router, "DELETE", "/api/v1/projects/"+projectID, "", token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, "GET", "/api/v1/modules/"+moduleID, "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
