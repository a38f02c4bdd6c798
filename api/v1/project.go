package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/services"
)

var projectService = services.NewProjectService()

// ListProjects godoc
// @Summary List the authenticated user's projects
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Router /projects [get]
func ListProjects(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	projects, err := projectService.ListProjects(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// GetProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Router /projects/{projectId} [get]
func GetProject(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	project, err := projectService.GetProject(userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject godoc
// @Summary Create a new project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project Data"
// @Success 201 {object} dto.ProjectResponse
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.CreateProject(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject godoc
// @Summary Partially update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param project body dto.PatchProjectRequest true "Fields to change"
// @Success 200 {object} dto.ProjectResponse
// @Router /projects/{projectId} [patch]
func UpdateProject(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req dto.PatchProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.UpdateProject(userID, projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject godoc
// @Summary Delete a project and everything under it
// @Tags projects
// @Param projectId path string true "Project ID"
// @Success 204
// @Router /projects/{projectId} [delete]
func DeleteProject(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	if err := projectService.DeleteProject(userID, projectID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
