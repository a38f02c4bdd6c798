package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sensorgrid-api/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupRouter wires the full v1 API against a fresh in-memory database.
// Shared cache keeps every pooled connection on the same database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	database.DB = db

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns its bearer token
func registerAndLogin(t *testing.T, router *gin.Engine, username, email string) string {
	t.Helper()
	password := "securepassword"

	body := fmt.Sprintf(`{"username": %q, "email": %q, "password": %q}`, username, email, password)
	w := doRequest(router, "POST", "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body = fmt.Sprintf(`{"login": %q, "password": %q}`, username, password)
	w = doRequest(router, "POST", "/api/v1/auth/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

// decodeData unmarshals the data field of a success envelope into dest
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status, w.Body.String())
	require.NoError(t, json.Unmarshal(resp.Data, dest))
}

// createProject is a shortcut used by the hierarchy tests
func createProject(t *testing.T, router *gin.Engine, token, name string) string {
	t.Helper()
	w := doRequest(router, "POST", "/api/v1/projects", fmt.Sprintf(`{"name": %q}`, name), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var project struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &project)
	return project.ID
}

func createModule(t *testing.T, router *gin.Engine, token, projectID, name string) string {
	t.Helper()
	path := "/api/v1/projects/" + projectID + "/modules"
	w := doRequest(router, "POST", path, fmt.Sprintf(`{"name": %q}`, name), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var module struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &module)
	return module.ID
}

func createDevice(t *testing.T, router *gin.Engine, token, moduleID, name, body string) string {
	t.Helper()
	if body == "" {
		body = fmt.Sprintf(`{
			"name": %q,
			"deviceType": "sensor",
			"dataTypes": [{"measurementType": "temperature", "measurementUnit": "celsius"}]
		}`, name)
	}
	path := "/api/v1/modules/" + moduleID + "/devices"
	w := doRequest(router, "POST", path, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var device struct {
		ID string `json:"id"`
	}
	decodeData(t, w, &device)
	return device.ID
}
