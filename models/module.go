package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Module groups devices inside a project. UserID mirrors the owning user of
// the parent project so ownership checks never need to walk the chain.
type Module struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	Description string    `json:"description" gorm:"size:200;default:null"`
	ProjectID   string    `json:"projectId" gorm:"type:uuid;not null;index"`
	UserID      string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Project Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Devices []Device `json:"devices,omitempty" gorm:"foreignKey:ModuleID"`
}

// TableName sets the table name for Module model
func (Module) TableName() string {
	return "modules"
}

func (m *Module) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
