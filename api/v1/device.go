package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/services"
)

var deviceService = services.NewDeviceService()

// ListDevices lists the devices of a module the user owns
func ListDevices(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return
	}

	devices, err := deviceService.ListDevices(userID, moduleID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   devices,
	})
}

// CreateDevice creates a device under a module the user owns
func CreateDevice(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return
	}

	var req dto.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	device, err := deviceService.CreateDevice(userID, moduleID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   device,
	})
}

// GetDevice returns a device addressed through its containing module
func GetDevice(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return
	}

	deviceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	device, err := deviceService.GetDevice(userID, moduleID, deviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   device,
	})
}

// DeleteDevice removes a device and its readings
func DeleteDevice(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	moduleID, ok := pathID(c, "moduleId")
	if !ok {
		return
	}

	deviceID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := deviceService.DeleteDevice(userID, moduleID, deviceID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
