package dto

import "time"

// CreateModuleRequest is the payload for creating a module under a project
type CreateModuleRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=200"`
}

// PatchModuleRequest is a partial update; nil means not provided
type PatchModuleRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=200"`
}

// Empty reports whether the patch carries no fields at all
func (r PatchModuleRequest) Empty() bool {
	return r.Name == nil && r.Description == nil
}

// ModuleResponse is the structure for module responses. Devices holds the ids
// of the devices the module currently contains.
type ModuleResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ProjectID   string    `json:"projectId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Devices     []string  `json:"devices"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
