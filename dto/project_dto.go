package dto

import "time"

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=200"`
}

// PatchProjectRequest is a partial update; nil means the field was not
// provided, which is distinct from an explicit empty string.
type PatchProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=200"`
}

// Empty reports whether the patch carries no fields at all
func (r PatchProjectRequest) Empty() bool {
	return r.Name == nil && r.Description == nil
}

// ProjectResponse is the structure for project responses. Modules holds the
// ids of the modules the project currently contains.
type ProjectResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Modules     []string  `json:"modules"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
