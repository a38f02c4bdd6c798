package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/services"
)

var moduleService = services.NewModuleService()

// ListModules lists the modules of a project the user owns
func ListModules(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	modules, err := moduleService.ListModules(userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   modules,
	})
}

// CreateModule creates a module under a project the user owns
func CreateModule(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	module, err := moduleService.CreateModule(userID, projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   module,
	})
}

// GetModule returns a module the user owns
func GetModule(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return
	}

	module, err := moduleService.GetModule(userID, moduleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   module,
	})
}

// UpdateModule partially updates a module
func UpdateModule(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return
	}

	var req dto.PatchModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	module, err := moduleService.UpdateModule(userID, moduleID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   module,
	})
}

// DeleteModule removes a module and everything under it
func DeleteModule(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return
	}

	if err := moduleService.DeleteModule(userID, moduleID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
