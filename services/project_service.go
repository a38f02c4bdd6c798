package services

import (
	"github.com/sensorgrid-api/apperrors"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/models"
	"github.com/sensorgrid-api/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// CreateProject creates a project owned by the given user
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (dto.ProjectResponse, error) {
	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
	}

	project, err := s.projectRepo.Create(project)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	return s.projectResponse(project)
}

// GetProject retrieves a project the user owns. Foreign-owned projects are
// reported as not found.
func (s *ProjectService) GetProject(userID, projectID string) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByOwner(userID, projectID)
	if err != nil {
		return dto.ProjectResponse{}, orNotFound(err, apperrors.ErrProjectNotFound)
	}
	return s.projectResponse(project)
}

// ListProjects retrieves all projects the user owns
func (s *ProjectService) ListProjects(userID string) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAllByOwner(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		response, err := s.projectResponse(project)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// UpdateProject applies a partial update. Only fields present in the patch
// change; a patch with no fields at all is rejected.
func (s *ProjectService) UpdateProject(userID, projectID string, req dto.PatchProjectRequest) (dto.ProjectResponse, error) {
	if req.Empty() {
		return dto.ProjectResponse{}, apperrors.ErrBadUpdateData
	}

	if _, err := s.projectRepo.FindByOwner(userID, projectID); err != nil {
		return dto.ProjectResponse{}, orNotFound(err, apperrors.ErrProjectNotFound)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if err := s.projectRepo.UpdateFields(projectID, fields); err != nil {
		return dto.ProjectResponse{}, err
	}

	project, err := s.projectRepo.FindByOwner(userID, projectID)
	if err != nil {
		return dto.ProjectResponse{}, orNotFound(err, apperrors.ErrProjectNotFound)
	}
	return s.projectResponse(project)
}

// DeleteProject removes the project and everything under it
func (s *ProjectService) DeleteProject(userID, projectID string) error {
	if _, err := s.projectRepo.FindByOwner(userID, projectID); err != nil {
		return orNotFound(err, apperrors.ErrProjectNotFound)
	}
	return s.projectRepo.Delete(projectID)
}

func (s *ProjectService) projectResponse(project models.Project) (dto.ProjectResponse, error) {
	moduleIDs, err := s.projectRepo.ModuleIDs(project.ID)
	if err != nil {
		return dto.ProjectResponse{}, err
	}
	return dto.ProjectResponse{
		ID:          project.ID,
		UserID:      project.UserID,
		Name:        project.Name,
		Description: project.Description,
		Modules:     moduleIDs,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}, nil
}
