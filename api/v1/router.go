package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sensorgrid-api/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Account deletion - protected, cascades the whole ownership tree
	router.DELETE("/users", middleware.AuthMiddleware(), DeleteCurrentUser)

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.GET("/:projectId", GetProject)
		projectGroup.PATCH("/:projectId", UpdateProject)
		projectGroup.DELETE("/:projectId", DeleteProject)
	}

	// Module endpoints - nested under the owning project for create/list
	moduleNested := router.Group("/projects/:projectId/modules")
	moduleNested.Use(middleware.AuthMiddleware())
	{
		moduleNested.GET("", ListModules)
		moduleNested.POST("", CreateModule)
	}

	moduleGroup := router.Group("/modules")
	moduleGroup.Use(middleware.AuthMiddleware())
	{
		moduleGroup.GET("/:moduleId", GetModule)
		moduleGroup.PATCH("/:moduleId", UpdateModule)
		moduleGroup.DELETE("/:moduleId", DeleteModule)
	}

	// Device endpoints - always addressed through the containing module
	deviceGroup := router.Group("/modules/:moduleId/devices")
	deviceGroup.Use(middleware.AuthMiddleware())
	{
		deviceGroup.GET("", ListDevices)
		deviceGroup.POST("", CreateDevice)
		deviceGroup.GET("/:id", GetDevice)
		deviceGroup.DELETE("/:id", DeleteDevice)
	}

	// Reading endpoints - no update or direct delete, readings are immutable
	readingGroup := router.Group("/devices/:deviceId/readings")
	readingGroup.Use(middleware.AuthMiddleware())
	{
		readingGroup.GET("", ListReadings)
		readingGroup.POST("", CreateReading)
	}
}
