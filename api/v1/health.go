package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "sensorgrid-api",
	})
}
