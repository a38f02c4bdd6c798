package services

import (
	"github.com/sensorgrid-api/apperrors"
	"github.com/sensorgrid-api/dto"
	"github.com/sensorgrid-api/models"
	"github.com/sensorgrid-api/repositories"
)

// ModuleService handles business logic for modules
type ModuleService struct {
	moduleRepo  *repositories.ModuleRepository
	projectRepo *repositories.ProjectRepository
}

// NewModuleService creates a new module service instance
func NewModuleService() *ModuleService {
	return &ModuleService{
		moduleRepo:  repositories.NewModuleRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// CreateModule creates a module under a project the user owns. The owning
// user id is copied down so later checks never walk the chain.
func (s *ModuleService) CreateModule(userID, projectID string, req dto.CreateModuleRequest) (dto.ModuleResponse, error) {
	project, err := s.projectRepo.FindByOwner(userID, projectID)
	if err != nil {
		return dto.ModuleResponse{}, orNotFound(err, apperrors.ErrProjectNotFound)
	}

	module := models.Module{
		Name:        req.Name,
		Description: req.Description,
		ProjectID:   project.ID,
		UserID:      project.UserID,
	}

	module, err = s.moduleRepo.Create(module)
	if err != nil {
		return dto.ModuleResponse{}, err
	}

	return s.moduleResponse(module)
}

// GetModule retrieves a module the user owns
func (s *ModuleService) GetModule(userID, moduleID string) (dto.ModuleResponse, error) {
	module, err := s.moduleRepo.FindByOwner(userID, moduleID)
	if err != nil {
		return dto.ModuleResponse{}, orNotFound(err, apperrors.ErrModuleNotFound)
	}
	return s.moduleResponse(module)
}

// ListModules retrieves the modules of a project the user owns
func (s *ModuleService) ListModules(userID, projectID string) ([]dto.ModuleResponse, error) {
	if _, err := s.projectRepo.FindByOwner(userID, projectID); err != nil {
		return nil, orNotFound(err, apperrors.ErrProjectNotFound)
	}

	modules, err := s.moduleRepo.FindAllByProject(projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ModuleResponse, 0, len(modules))
	for _, module := range modules {
		response, err := s.moduleResponse(module)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// UpdateModule applies a partial update. Only fields present in the patch
// change; a patch with no fields at all is rejected.
func (s *ModuleService) UpdateModule(userID, moduleID string, req dto.PatchModuleRequest) (dto.ModuleResponse, error) {
	if req.Empty() {
		return dto.ModuleResponse{}, apperrors.ErrBadUpdateData
	}

	if _, err := s.moduleRepo.FindByOwner(userID, moduleID); err != nil {
		return dto.ModuleResponse{}, orNotFound(err, apperrors.ErrModuleNotFound)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if err := s.moduleRepo.UpdateFields(moduleID, fields); err != nil {
		return dto.ModuleResponse{}, err
	}

	module, err := s.moduleRepo.FindByOwner(userID, moduleID)
	if err != nil {
		return dto.ModuleResponse{}, orNotFound(err, apperrors.ErrModuleNotFound)
	}
	return s.moduleResponse(module)
}

// DeleteModule removes the module and everything under it
func (s *ModuleService) DeleteModule(userID, moduleID string) error {
	if _, err := s.moduleRepo.FindByOwner(userID, moduleID); err != nil {
		return orNotFound(err, apperrors.ErrModuleNotFound)
	}
	return s.moduleRepo.Delete(moduleID)
}

func (s *ModuleService) moduleResponse(module models.Module) (dto.ModuleResponse, error) {
	deviceIDs, err := s.moduleRepo.DeviceIDs(module.ID)
	if err != nil {
		return dto.ModuleResponse{}, err
	}
	return dto.ModuleResponse{
		ID:          module.ID,
		UserID:      module.UserID,
		ProjectID:   module.ProjectID,
		Name:        module.Name,
		Description: module.Description,
		Devices:     deviceIDs,
		CreatedAt:   module.CreatedAt,
		UpdatedAt:   module.UpdatedAt,
	}, nil
}
